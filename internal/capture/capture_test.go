package capture

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"
)

type fakeBackend struct {
	monitors    []MonitorInfo
	desktop     *image.RGBA
	monitorsErr error
	desktopErr  error
}

func (f fakeBackend) Monitors() ([]MonitorInfo, error) {
	if f.monitorsErr != nil {
		return nil, f.monitorsErr
	}
	return f.monitors, nil
}

func (f fakeBackend) Desktop() (*image.RGBA, error) {
	if f.desktopErr != nil {
		return nil, f.desktopErr
	}
	return f.desktop, nil
}

func useBackend(t *testing.T, b platformBackend) {
	t.Helper()
	original := backend
	backend = b
	t.Cleanup(func() { backend = original })
}

var twoHeads = []MonitorInfo{
	{Index: 0, Name: "eDP-1", Rect: image.Rect(0, 0, 4, 4)},
	{Index: 1, Name: "HDMI-1", Rect: image.Rect(4, 0, 10, 4), Primary: true},
}

func TestFindMonitor(t *testing.T) {
	cases := map[string]string{
		"":        "eDP-1",
		"primary": "HDMI-1",
		"1":       "HDMI-1",
		"#0":      "eDP-1",
		"hdmi":    "HDMI-1",
	}
	for sel, want := range cases {
		got, err := FindMonitor(twoHeads, sel)
		if err != nil {
			t.Fatalf("FindMonitor(%q): %v", sel, err)
		}
		if got.Name != want {
			t.Fatalf("FindMonitor(%q) = %s, want %s", sel, got.Name, want)
		}
	}
	for _, sel := range []string{"7", "dp-9"} {
		if _, err := FindMonitor(twoHeads, sel); err == nil {
			t.Fatalf("expected error for %q", sel)
		}
	}
	if _, err := FindMonitor(nil, ""); !errors.Is(err, errNoMonitors) {
		t.Fatalf("expected errNoMonitors, got %v", err)
	}
}

func TestCropToRect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 4))
	src.Set(5, 1, color.RGBA{G: 255, A: 255})
	got, err := cropToRect(src, image.Rect(4, 0, 12, 4))
	if err != nil {
		t.Fatalf("cropToRect: %v", err)
	}
	if b := got.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
		t.Fatalf("unexpected bounds %v", b)
	}
	if c := got.RGBAAt(1, 1); c.G != 255 {
		t.Fatalf("crop shifted pixels: %+v", c)
	}
	if _, err := cropToRect(src, image.Rect(20, 20, 30, 30)); err == nil {
		t.Fatal("expected error for region outside the image")
	}
}

func TestGrab(t *testing.T) {
	desktop := image.NewRGBA(image.Rect(0, 0, 10, 4))
	useBackend(t, fakeBackend{monitors: twoHeads, desktop: desktop})

	img, err := Grab("")
	if err != nil || img != desktop {
		t.Fatalf("Grab(\"\") = %v, %v", img, err)
	}
	img, err = Grab("primary")
	if err != nil {
		t.Fatalf("Grab(primary): %v", err)
	}
	if img.Bounds().Dx() != 6 {
		t.Fatalf("expected HDMI-1 crop, got %v", img.Bounds())
	}
}

func TestGrabErrors(t *testing.T) {
	boom := errors.New("no display")
	useBackend(t, fakeBackend{desktopErr: boom})
	if _, err := Grab(""); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped desktop error, got %v", err)
	}

	useBackend(t, fakeBackend{desktop: image.NewRGBA(image.Rect(0, 0, 1, 1)), monitorsErr: boom})
	_, err := Grab("hdmi")
	if !errors.Is(err, boom) || !strings.Contains(err.Error(), `"hdmi"`) {
		t.Fatalf("expected monitor error with selector context, got %v", err)
	}
}

func TestListMonitors(t *testing.T) {
	useBackend(t, fakeBackend{monitors: twoHeads})
	got, err := ListMonitors()
	if err != nil {
		t.Fatalf("ListMonitors: %v", err)
	}
	var lines []string
	for _, m := range got {
		lines = append(lines, m.String())
	}
	want := "0: eDP-1 4x4+0+0\n1: HDMI-1 6x4+4+0 (primary)"
	if joined := strings.Join(lines, "\n"); joined != want {
		t.Fatalf("unexpected listing:\n%s", joined)
	}

	useBackend(t, fakeBackend{monitorsErr: errNoMonitors})
	if _, err := ListMonitors(); !errors.Is(err, errNoMonitors) {
		t.Fatalf("expected backend error, got %v", err)
	}
}
