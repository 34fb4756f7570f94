package palette

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
	}{
		{"#d42426", color.NRGBA{R: 0xd4, G: 0x24, B: 0x26, A: 0xff}},
		{"2A9D8F", color.NRGBA{R: 0x2a, G: 0x9d, B: 0x8f, A: 0xff}},
		{"#f80", color.NRGBA{R: 0xff, G: 0x88, B: 0x00, A: 0xff}},
		{"#11223380", color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x80}},
		{"gold", color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}},
		{" Forest Green ", color.NRGBA{R: 0x22, G: 0x8b, B: 0x22, A: 0xff}},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#zzzzzz", "notacolour", "#1234567"} {
		if _, err := Parse(in); !errors.Is(err, ErrInvalidColor) {
			t.Fatalf("Parse(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestParseOrLogsFallback(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	fallback := color.NRGBA{R: 1, G: 2, B: 3, A: 255}
	if got := ParseOr("bogus", fallback, zap.New(core)); got != fallback {
		t.Fatalf("got %+v, want fallback", got)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected one warning, got %d", logs.Len())
	}
	if got := ParseOr("#000", fallback, nil); got != (color.NRGBA{A: 255}) {
		t.Fatalf("got %+v, want black", got)
	}
}

func TestParseListRoundTrip(t *testing.T) {
	in := "#d42426, teal,,#ffffff80"
	colors, err := ParseList(in)
	if err != nil {
		t.Fatalf("ParseList: %v", err)
	}
	again, err := ParseList(HexList(colors))
	if err != nil {
		t.Fatalf("ParseList: %v", err)
	}
	if diff := cmp.Diff(colors, again); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
	if len(colors) != 3 {
		t.Fatalf("expected 3 colors, got %d", len(colors))
	}
	if _, err := ParseList("red,nope"); err == nil {
		t.Fatal("expected error for bad entry")
	}
}

func TestTint(t *testing.T) {
	c := color.NRGBA{R: 100, G: 0, B: 200, A: 128}
	if got := Tint(c, 0); got != c {
		t.Fatalf("zero tint changed colour: %+v", got)
	}
	if got := Tint(c, 1); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 128}) {
		t.Fatalf("full lighten = %+v", got)
	}
	if got := Tint(c, -2); got != (color.NRGBA{A: 128}) {
		t.Fatalf("full darken = %+v", got)
	}
	if got := Tint(c, 0.5); got.R != 178 || got.G != 128 || got.B != 228 {
		t.Fatalf("half lighten = %+v", got)
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.NRGBA{R: 0xd4, G: 0x24, B: 0x26, A: 0xff}); got != "#d42426" {
		t.Fatalf("Hex = %q", got)
	}
	if got := Hex(color.NRGBA{R: 1, G: 2, B: 3, A: 4}); got != "#01020304" {
		t.Fatalf("Hex = %q", got)
	}
}
