package frame

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// FallbackName is used when the message gives no usable filename.
const FallbackName = "christmas-avatar"

var unsafeName = regexp.MustCompile(`[^a-zA-Z0-9]`)

// ExportFilename derives a PNG filename from message. Every rune outside
// ASCII letters and digits becomes an underscore and the result is lower-cased.
func ExportFilename(message string) string {
	name := strings.ToLower(unsafeName.ReplaceAllString(message, "_"))
	if name == "" {
		name = FallbackName
	}
	return name + ".png"
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes img to path, creating parent directories.
func SavePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
