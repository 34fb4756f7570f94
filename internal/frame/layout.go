package frame

import (
	"image/color"

	"github.com/example/framemaker/internal/render"
	"go.uber.org/zap"
)

// ReferenceSize is the canvas edge the layout ratios were tuned on.
const ReferenceSize = 400

// Bounds on the canvas edge accepted from users.
const (
	MinSize = 64
	MaxSize = 2048
)

// Layout holds the geometry and styling that stay fixed between redraws.
type Layout struct {
	Size int

	SpanStart float64
	SpanEnd   float64
	// Padding is extra arc, in degrees, added around measured text.
	Padding float64
	// CharSpacing is the gap between glyphs in degrees.
	CharSpacing float64

	StrokeRatio  float64
	FadeFraction float64
	TextRatio    float64
	TextNudge    float64

	Background       color.Color
	PlaceholderFill  color.Color
	PlaceholderInk   color.Color
	PlaceholderLabel string
	PlaceholderSize  float64

	TextShadow render.ShadowOptions

	// Metrics overrides font measurement. When nil the bold Go font is used.
	Metrics Metrics
	Logger  *zap.Logger
}

// DefaultLayout returns the 400px layout.
func DefaultLayout() Layout {
	return Layout{
		Size:             ReferenceSize,
		SpanStart:        160,
		SpanEnd:          300,
		Padding:          25,
		CharSpacing:      1,
		StrokeRatio:      0.14,
		FadeFraction:     0.1,
		TextRatio:        0.075,
		TextNudge:        0.1,
		Background:       color.Gray{Y: 240},
		PlaceholderFill:  color.Gray{Y: 220},
		PlaceholderInk:   color.Gray{Y: 100},
		PlaceholderLabel: "Upload Photo",
		PlaceholderSize:  16,
	}
}

// StrokeWeight is the ribbon width in pixels.
func (l Layout) StrokeWeight() float64 { return float64(l.Size) * l.StrokeRatio }

// Radius is the distance from the centre to the middle of the ribbon.
func (l Layout) Radius() float64 { return float64(l.Size)/2 - l.StrokeWeight()/2 }

// TextSize is the ribbon font size in pixels.
func (l Layout) TextSize() float64 { return float64(l.Size) * l.TextRatio }

// Spacing returns CharSpacing in radians.
func (l Layout) Spacing() float64 { return radians(l.CharSpacing) }

func (l Layout) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}

// Span computes the ribbon span for st's message.
func (l Layout) Span(message string, m Metrics) Span {
	return ComputeSpan(DisplayOrder(message), m, l.Radius(), l.Spacing(), l.SpanStart, l.SpanEnd, l.Padding)
}
