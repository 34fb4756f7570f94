package frame

import (
	"math"
	"strings"
)

// Span is an angular interval in degrees, measured clockwise from twelve
// o'clock. End is always greater than Start.
type Span struct {
	Start float64
	End   float64
}

// Width returns End - Start in degrees.
func (s Span) Width() float64 { return s.End - s.Start }

// Center returns the midpoint of the span in degrees.
func (s Span) Center() float64 { return (s.Start + s.End) / 2 }

// Ratio returns the fraction of a full turn covered by the span.
func (s Span) Ratio() float64 { return s.Width() / 360 }

// DisplayOrder prepares a message for the arc. Glyphs are laid out walking
// the arc in increasing angle and each one is turned through a half-turn, so
// on the lower half of the circle the runes must be reversed to read left to
// right. Letters are upper-cased.
func DisplayOrder(message string) string {
	runes := []rune(strings.ToUpper(message))
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// TextAngle returns the angle in radians the message occupies on a circle of
// the given radius: each rune contributes advance/radius and consecutive runes
// are separated by charSpacing.
func TextAngle(message string, m Metrics, radius, charSpacing float64) float64 {
	if radius <= 0 || m == nil {
		return 0
	}
	total := 0.0
	i := 0
	for _, r := range message {
		if i > 0 {
			total += charSpacing
		}
		total += m.Advance(r) / radius
		i++
	}
	return total
}

// ComputeSpan returns the arc the ribbon must cover to hold message. The
// default span is kept unless the text plus padding needs more room, in which
// case the span grows symmetrically around the default centre. An empty
// message is measured as a single blank.
func ComputeSpan(message string, m Metrics, radius, charSpacing, defaultStart, defaultEnd, paddingDegrees float64) Span {
	def := Span{Start: defaultStart, End: defaultEnd}
	if message == "" {
		message = " "
	}
	if radius <= 0 {
		return def
	}
	required := degrees(TextAngle(message, m, radius, charSpacing)) + paddingDegrees
	if required <= def.Width() {
		return def
	}
	center := def.Center()
	return Span{Start: center - required/2, End: center + required/2}
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func radians(deg float64) float64 { return deg * math.Pi / 180 }
