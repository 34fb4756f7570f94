// Package notify turns save, copy and grab events into desktop notifications.
package notify

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/example/framemaker/internal/frame"
	"github.com/example/framemaker/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventSave fires when a frame is written to disk.
	EventSave Event = "save"
	// EventCopy fires when a frame is placed on the clipboard.
	EventCopy Event = "copy"
	// EventGrab fires when a screen grab is used as the photo.
	EventGrab Event = "grab"
)

// Preferences holds the title and per-event body templates. Each template
// takes a single %s.
type Preferences struct {
	Title     string
	Templates map[Event]string
}

// DefaultPreferences returns the built-in wording.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: "Frame Maker",
		Templates: map[Event]string{
			EventSave: "Saved %s",
			EventCopy: "Copied %s to clipboard",
			EventGrab: "Using screen grab %s",
		},
	}
}

// LoadPreferences applies FRAMEMAKER_NOTIFY_* environment overrides.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("FRAMEMAKER_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	for event, key := range map[Event]string{
		EventSave: "FRAMEMAKER_NOTIFY_SAVE_TEXT",
		EventCopy: "FRAMEMAKER_NOTIFY_COPY_TEXT",
		EventGrab: "FRAMEMAKER_NOTIFY_GRAB_TEXT",
	} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			prefs.Templates[event] = v
		}
	}
	return prefs
}

// Notifier sends notifications for the events that are enabled. The zero
// value and a nil *Notifier are silent.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
	log     *zap.Logger
	send    func(title, body string, opts platform.Options) error
}

// New creates a Notifier. A nil logger discards warnings.
func New(prefs Preferences, log *zap.Logger) *Notifier {
	templates := make(map[Event]string, len(prefs.Templates))
	for k, v := range prefs.Templates {
		templates[k] = v
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Notifier{
		prefs:   Preferences{Title: prefs.Title, Templates: templates},
		enabled: make(map[Event]bool),
		log:     log,
		send:    platform.Notify,
	}
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	if n.enabled == nil {
		n.enabled = make(map[Event]bool)
	}
	n.enabled[event] = enabled
}

// Enabled reports whether event would produce a notification.
func (n *Notifier) Enabled(event Event) bool {
	return n != nil && n.enabled[event]
}

// Save announces a written file and uses it as the notification icon.
func (n *Notifier) Save(path string) {
	if !n.Enabled(EventSave) {
		return
	}
	detail := strings.TrimSpace(path)
	opts := platform.Options{}
	if abs, err := filepath.Abs(path); err == nil {
		detail = abs
		if _, err := os.Stat(abs); err == nil {
			opts.IconPath = abs
		}
	}
	n.dispatch(EventSave, detail, opts)
}

// Copy announces a clipboard write.
func (n *Notifier) Copy(detail string) {
	if !n.Enabled(EventCopy) {
		return
	}
	if strings.TrimSpace(detail) == "" {
		detail = "frame"
	}
	n.dispatch(EventCopy, detail, platform.Options{})
}

// Grab announces a screen grab, attaching a preview of img when given.
func (n *Notifier) Grab(detail string, img image.Image) {
	if !n.Enabled(EventGrab) {
		return
	}
	opts := platform.Options{}
	if img != nil {
		path, cleanup, err := writePreview(img)
		if err != nil {
			n.log.Warn("notification preview", zap.Error(err))
		} else {
			defer cleanup()
			opts.IconPath = path
		}
	}
	n.dispatch(EventGrab, detail, opts)
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	template := strings.TrimSpace(n.prefs.Templates[event])
	if template == "" {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(template, strings.TrimSpace(detail)))
	if body == "" {
		return
	}
	if err := n.send(n.prefs.Title, body, opts); err != nil {
		n.log.Warn("notification failed", zap.String("event", string(event)), zap.Error(err))
	}
}

func writePreview(img image.Image) (string, func(), error) {
	f, err := os.CreateTemp("", "framemaker-preview-*.png")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	if err := frame.EncodePNG(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, err
	}
	return path, func() { _ = os.Remove(path) }, nil
}
