package frame

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedImage is returned for input that is not a decodable image.
var ErrUnsupportedImage = errors.New("unsupported image")

// sniffLen is how many bytes content sniffing looks at.
const sniffLen = 512

// DecodePhoto sniffs r and decodes it when it is an image. Anything else
// yields ErrUnsupportedImage.
func DecodePhoto(r io.Reader) (image.Image, error) {
	br := bufio.NewReaderSize(r, sniffLen)
	head, err := br.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, fmt.Errorf("read photo: %w", err)
	}
	if len(head) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrUnsupportedImage)
	}
	if ct := http.DetectContentType(head); !strings.HasPrefix(ct, "image/") && !isTIFF(head) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, ct)
	}
	img, format, err := image.Decode(br)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrUnsupportedImage, format, err)
	}
	return img, nil
}

// LoadPhoto opens and decodes the photo at path.
func LoadPhoto(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := DecodePhoto(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// isTIFF covers the byte-order marks http.DetectContentType does not know.
func isTIFF(head []byte) bool {
	return strings.HasPrefix(string(head), "II*\x00") || strings.HasPrefix(string(head), "MM\x00*")
}
