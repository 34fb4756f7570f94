// Package capture grabs the desktop so a screen region can be used as the
// frame photo.
package capture

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"strconv"
	"strings"
)

type platformBackend interface {
	Monitors() ([]MonitorInfo, error)
	Desktop() (*image.RGBA, error)
}

var backend = newBackend()

var errNoMonitors = errors.New("no monitors available")

// MonitorInfo describes one output in the desktop layout.
type MonitorInfo struct {
	Index   int
	Name    string
	Rect    image.Rectangle
	Primary bool
}

func (m MonitorInfo) String() string {
	s := fmt.Sprintf("%d: %s %dx%d+%d+%d", m.Index, m.Name, m.Rect.Dx(), m.Rect.Dy(), m.Rect.Min.X, m.Rect.Min.Y)
	if m.Primary {
		s += " (primary)"
	}
	return s
}

// ListMonitors returns the connected monitors.
func ListMonitors() ([]MonitorInfo, error) {
	return backend.Monitors()
}

// Grab captures the whole desktop, or only the monitor matching selector
// when one is given.
func Grab(selector string) (*image.RGBA, error) {
	img, err := backend.Desktop()
	if err != nil {
		return nil, fmt.Errorf("grab desktop: %w", err)
	}
	if strings.TrimSpace(selector) == "" {
		return img, nil
	}
	monitors, err := backend.Monitors()
	if err != nil {
		return nil, fmt.Errorf("grab monitor %q: %w", selector, err)
	}
	mon, err := FindMonitor(monitors, selector)
	if err != nil {
		return nil, err
	}
	return cropToRect(img, mon.Rect)
}

// FindMonitor resolves a selector: empty picks the first monitor, "primary"
// the primary one, a number (optionally prefixed with #) an index, and
// anything else a case-insensitive substring of the output name.
func FindMonitor(monitors []MonitorInfo, selector string) (MonitorInfo, error) {
	if len(monitors) == 0 {
		return MonitorInfo{}, errNoMonitors
	}
	sel := strings.ToLower(strings.TrimSpace(selector))
	if sel == "" {
		return monitors[0], nil
	}
	if sel == "primary" {
		for _, mon := range monitors {
			if mon.Primary {
				return mon, nil
			}
		}
		return monitors[0], nil
	}
	if idx, err := strconv.Atoi(strings.TrimPrefix(sel, "#")); err == nil {
		if idx < 0 || idx >= len(monitors) {
			return MonitorInfo{}, fmt.Errorf("monitor index %d out of range", idx)
		}
		return monitors[idx], nil
	}
	for _, mon := range monitors {
		if strings.Contains(strings.ToLower(mon.Name), sel) {
			return mon, nil
		}
	}
	return MonitorInfo{}, fmt.Errorf("monitor %q not found", selector)
}

func cropToRect(src *image.RGBA, rect image.Rectangle) (*image.RGBA, error) {
	rect = rect.Intersect(src.Bounds())
	if rect.Empty() {
		return nil, fmt.Errorf("requested region outside captured image")
	}
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(dst, dst.Bounds(), src, rect.Min, draw.Src)
	return dst, nil
}
