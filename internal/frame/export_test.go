package frame

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestExportFilename(t *testing.T) {
	cases := map[string]string{
		"Merry Xmas!":   "merry_xmas_.png",
		"":              "christmas-avatar.png",
		"HoHoHo2025":    "hohoho2025.png",
		"Joyeux Noël":   "joyeux_no_l.png",
		"../etc/passwd": "___etc_passwd.png",
		"\u017Fanta":    "_anta.png",
		"\u212Aid":      "_id.png",
	}
	for in, want := range cases {
		if got := ExportFilename(in); got != want {
			t.Fatalf("ExportFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSavePNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out", ExportFilename("Snow"))
	img := image.NewRGBA(image.Rect(0, 0, 6, 4))
	if err := SavePNG(path, img); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 6 || cfg.Height != 4 {
		t.Fatalf("unexpected size %dx%d", cfg.Width, cfg.Height)
	}
}
