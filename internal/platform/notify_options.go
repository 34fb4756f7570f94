// Package platform sends desktop notifications through the host's native
// notification service.
package platform

// AppName identifies the sender to the notification service.
const AppName = "framemaker"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image the notification should
	// show if the platform supports it.
	IconPath string
	// Timeout in milliseconds. Zero uses five seconds.
	Timeout int32
}

func (o Options) timeout() int32 {
	if o.Timeout <= 0 {
		return 5000
	}
	return o.Timeout
}
