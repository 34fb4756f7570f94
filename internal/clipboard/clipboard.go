// Package clipboard moves frames and photos through the system clipboard.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/example/framemaker/internal/frame"
)

// ErrEmpty is returned when the clipboard holds nothing of the requested kind.
var ErrEmpty = errors.New("clipboard is empty")

// decodeImage turns clipboard bytes into a photo. Anything that is not an
// image yields frame.ErrUnsupportedImage.
func decodeImage(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("image: %w", ErrEmpty)
	}
	return frame.DecodePhoto(bytes.NewReader(data))
}

func encodeImage(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, errors.New("clipboard: nil image")
	}
	var buf bytes.Buffer
	if err := frame.EncodePNG(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
