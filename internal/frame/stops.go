package frame

import (
	"image/color"
	"math"
)

const (
	// HairFraction is how far past the span end the trailing transparent
	// stop sits, as a fraction of the span.
	HairFraction = 0.001
	// MinFade and MaxFade bound the fade fraction so the flat colour stops
	// never land on the transparent ones.
	MinFade = 0.005
	MaxFade = 0.45
)

// Stop is a gradient colour at a position along the ribbon.
type Stop struct {
	Pos   float64
	Color color.NRGBA
}

// Stops is an ordered gradient with non-decreasing positions.
type Stops []Stop

// BuildStops lays colors out across a span normalised to [0,1]. The list is
// walked in reverse so the first colour ends up at the visually left end of a
// lower arc. Both ends fade from a transparent copy of the outermost colour
// and a final transparent stop sits just past 1.
func BuildStops(colors []color.NRGBA, fadeFraction float64) Stops {
	n := len(colors)
	if n == 0 {
		return nil
	}
	fade := clampFloat(fadeFraction, MinFade, MaxFade)
	activeStart := fade
	activeEnd := 1 - fade
	activeSpan := activeEnd - activeStart

	reversed := make([]color.NRGBA, n)
	for i, c := range colors {
		reversed[n-1-i] = c
	}
	first := reversed[0]
	last := reversed[n-1]

	stops := make(Stops, 0, n+4)
	stops = append(stops, Stop{Pos: 0, Color: transparent(first)})
	if n == 1 {
		stops = append(stops,
			Stop{Pos: activeStart, Color: first},
			Stop{Pos: activeEnd, Color: first},
		)
	} else {
		for i, c := range reversed {
			pos := activeStart + float64(i)/float64(n-1)*activeSpan
			stops = append(stops, Stop{Pos: pos, Color: c})
		}
	}
	stops = append(stops,
		Stop{Pos: 1, Color: transparent(last)},
		Stop{Pos: 1 + HairFraction, Color: transparent(last)},
	)
	return stops
}

// Scale maps span-relative positions onto fractions of a full turn. Positions
// are capped at 1.
func (s Stops) Scale(spanRatio float64) Stops {
	out := make(Stops, len(s))
	for i, st := range s {
		out[i] = Stop{Pos: math.Min(st.Pos*spanRatio, 1), Color: st.Color}
	}
	return out
}

// At returns the colour at t, interpolating between neighbouring stops and
// holding the end colours outside the stop range.
func (s Stops) At(t float64) color.NRGBA {
	if len(s) == 0 {
		return color.NRGBA{}
	}
	if t <= s[0].Pos {
		return s[0].Color
	}
	lastIdx := len(s) - 1
	if t >= s[lastIdx].Pos {
		return s[lastIdx].Color
	}
	for i := 1; i < len(s); i++ {
		next := s[i]
		if t > next.Pos {
			continue
		}
		prev := s[i-1]
		width := next.Pos - prev.Pos
		if width <= 0 {
			return next.Color
		}
		return lerpNRGBA(prev.Color, next.Color, (t-prev.Pos)/width)
	}
	return s[lastIdx].Color
}

func transparent(c color.NRGBA) color.NRGBA {
	c.A = 0
	return c
}

func lerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
