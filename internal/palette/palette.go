// Package palette parses and formats the colours used for ribbons and text.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned for strings that are neither a colour name
// nor a hex colour.
var ErrInvalidColor = errors.New("invalid color")

// Parse reads an SVG colour name or a hex colour in #RGB, #RRGGBB or
// #RRGGBBAA form. The leading # is optional for hex values.
func Parse(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("%w: empty", ErrInvalidColor)
	}
	if c, ok := colornames.Map[strings.ToLower(strings.ReplaceAll(s, " ", ""))]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		v, err := strconv.ParseUint(hex, 16, 16)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
		}
		r, g, b := uint8(v>>8&0xF), uint8(v>>4&0xF), uint8(v&0xF)
		return color.NRGBA{R: r * 17, G: g * 17, B: b * 17, A: 255}, nil
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
		}
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
		}
		return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
	}
	return color.NRGBA{}, fmt.Errorf("%w %q", ErrInvalidColor, s)
}

// ParseOr parses s and returns fallback, logging a warning, when it is not
// a colour.
func ParseOr(s string, fallback color.NRGBA, log *zap.Logger) color.NRGBA {
	c, err := Parse(s)
	if err != nil {
		if log != nil {
			log.Warn("using fallback color", zap.String("input", s), zap.String("fallback", Hex(fallback)), zap.Error(err))
		}
		return fallback
	}
	return c
}

// ParseList parses a comma separated list of colours. Blank entries are
// skipped.
func ParseList(s string) ([]color.NRGBA, error) {
	var out []color.NRGBA
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := Parse(part)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Hex formats c as #RRGGBB, or #RRGGBBAA when it is not opaque.
func Hex(c color.NRGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// HexList joins colours with commas in the form ParseList reads.
func HexList(colors []color.NRGBA) string {
	parts := make([]string, len(colors))
	for i, c := range colors {
		parts[i] = Hex(c)
	}
	return strings.Join(parts, ",")
}

// Tint moves c towards white for positive amounts and towards black for
// negative ones. amount is clamped to [-1, 1]; alpha is kept.
func Tint(c color.NRGBA, amount float64) color.NRGBA {
	if amount > 1 {
		amount = 1
	} else if amount < -1 {
		amount = -1
	}
	target := 255.0
	if amount < 0 {
		target, amount = 0, -amount
	}
	mix := func(v uint8) uint8 {
		return uint8(float64(v) + (target-float64(v))*amount + 0.5)
	}
	return color.NRGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}

// ANSI returns a two-cell truecolor swatch for terminals.
func ANSI(c color.NRGBA) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", c.R, c.G, c.B)
}
