package frame

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// widthByRune gives each rune a distinct width so ordering mistakes show.
type widthByRune map[rune]float64

func (w widthByRune) Advance(r rune) float64 {
	if v, ok := w[r]; ok {
		return v
	}
	return 10
}

func TestPlaceCharactersProperties(t *testing.T) {
	l := DefaultLayout()
	m := widthByRune{'M': 26, 'I': 8, ' ': 9, 'W': 30}
	radius := l.Radius()
	spacing := l.Spacing()
	for _, msg := range []string{"A", "MI", "MERRY XMAS", "WWWIIIWWW", "HAPPY NEW YEAR EVERYONE"} {
		msg = DisplayOrder(msg)
		span := ComputeSpan(msg, m, radius, spacing, 160, 300, 25)
		places := PlaceCharacters(msg, span, m, radius, spacing)
		runes := []rune(msg)
		if len(places) != len(runes) {
			t.Fatalf("%q: %d placements, want %d", msg, len(places), len(runes))
		}
		slots := 0.0
		for i, p := range places {
			if p.Char != runes[i] {
				t.Fatalf("%q: placement %d is %q, want %q", msg, i, p.Char, runes[i])
			}
			if p.Radius != radius {
				t.Fatalf("%q: radius %v, want %v", msg, p.Radius, radius)
			}
			if math.Abs(p.Rotation-(p.Angle+math.Pi)) > 1e-12 {
				t.Fatalf("%q: rotation %v is not angle+pi", msg, p.Rotation)
			}
			if i > 0 {
				prev := places[i-1]
				gap := p.Angle - prev.Angle
				want := m.Advance(prev.Char)/(2*radius) + spacing + m.Advance(p.Char)/(2*radius)
				if gap <= 0 || math.Abs(gap-want) > 1e-9 {
					t.Fatalf("%q: gap %v between %d and %d, want %v", msg, gap, i-1, i, want)
				}
			}
			slots += m.Advance(p.Char) / radius
		}
		total := TextAngle(msg, m, radius, spacing)
		if diff := cmp.Diff(total-float64(len(runes)-1)*spacing, slots, approx); diff != "" {
			t.Fatalf("%q: slot sum mismatch (-want +got):\n%s", msg, diff)
		}
		first := places[0].Angle - m.Advance(runes[0])/(2*radius)
		last := places[len(places)-1].Angle + m.Advance(runes[len(runes)-1])/(2*radius)
		if diff := cmp.Diff(radians(span.Center()), (first+last)/2, approx); diff != "" {
			t.Fatalf("%q: text not centred (-want +got):\n%s", msg, diff)
		}
	}
}

func TestPlaceCharactersEmpty(t *testing.T) {
	if got := PlaceCharacters("", Span{Start: 160, End: 300}, FixedMetrics(10), 172, 0.01); got != nil {
		t.Fatalf("expected no placements, got %+v", got)
	}
}

func TestPlacementPosition(t *testing.T) {
	p := Placement{Angle: math.Pi, Radius: 172}
	x, y := p.Position(200, 200)
	if diff := cmp.Diff([]float64{200, 372}, []float64{x, y}, approx); diff != "" {
		t.Fatalf("bottom placement mismatch (-want +got):\n%s", diff)
	}
	p.Angle = math.Pi * 3 / 2
	x, y = p.Position(200, 200)
	if diff := cmp.Diff([]float64{28, 200}, []float64{x, y}, approx); diff != "" {
		t.Fatalf("left placement mismatch (-want +got):\n%s", diff)
	}
}
