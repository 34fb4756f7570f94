package frame

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Metrics reports the rendered advance width, in pixels, of a single rune.
type Metrics interface {
	Advance(r rune) float64
}

// FixedMetrics gives every rune the same width.
type FixedMetrics float64

// Advance implements Metrics.
func (m FixedMetrics) Advance(rune) float64 { return float64(m) }

// FaceMetrics measures runes with a font face.
type FaceMetrics struct {
	Face font.Face
}

// Advance implements Metrics. Runes missing from the face fall back to the
// width of '?'.
func (m FaceMetrics) Advance(r rune) float64 {
	if m.Face == nil {
		return 0
	}
	adv, ok := m.Face.GlyphAdvance(r)
	if !ok {
		adv, _ = m.Face.GlyphAdvance('?')
	}
	return fixedToFloat(adv)
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }

var (
	fontsOnce   sync.Once
	fontsErr    error
	boldFont    *opentype.Font
	regularFont *opentype.Font
)

func loadFonts() {
	boldFont, fontsErr = opentype.Parse(gobold.TTF)
	if fontsErr != nil {
		fontsErr = fmt.Errorf("parse bold font: %w", fontsErr)
		return
	}
	regularFont, fontsErr = opentype.Parse(goregular.TTF)
	if fontsErr != nil {
		fontsErr = fmt.Errorf("parse regular font: %w", fontsErr)
	}
}

// NewFace returns a fresh face of the embedded Go font at size pixels. Faces
// are not safe for concurrent use so callers create one per render.
func NewFace(size float64, bold bool) (font.Face, error) {
	fontsOnce.Do(loadFonts)
	if fontsErr != nil {
		return nil, fontsErr
	}
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %v", size)
	}
	f := regularFont
	if bold {
		f = boldFont
	}
	return opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
}
