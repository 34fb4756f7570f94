package frame

import "math"

// Placement positions a single glyph on the arc.
type Placement struct {
	Char rune
	// Angle is the glyph centre in radians, clockwise from twelve o'clock.
	Angle float64
	// Radius is the distance from the frame centre to the glyph centre.
	Radius float64
	// Rotation is the glyph rotation: Angle plus a half-turn so text on the
	// lower arc reads upright.
	Rotation float64
}

// Position returns the glyph centre for a frame centred on (cx, cy).
func (p Placement) Position(cx, cy float64) (float64, float64) {
	return cx + p.Radius*math.Sin(p.Angle), cy - p.Radius*math.Cos(p.Angle)
}

// PlaceCharacters centres message inside span and returns one placement per
// rune in order. Each glyph sits in the middle of its own angular slot.
func PlaceCharacters(message string, span Span, m Metrics, radius, charSpacing float64) []Placement {
	if message == "" || radius <= 0 || m == nil {
		return nil
	}
	total := TextAngle(message, m, radius, charSpacing)
	current := radians(span.Center()) - total/2
	out := make([]Placement, 0, len(message))
	for _, r := range message {
		slot := m.Advance(r) / radius
		theta := current + slot/2
		out = append(out, Placement{Char: r, Angle: theta, Radius: radius, Rotation: theta + math.Pi})
		current += slot + charSpacing
	}
	return out
}
