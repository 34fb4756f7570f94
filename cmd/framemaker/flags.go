package main

import (
	"image/color"
	"strings"

	"github.com/example/framemaker/internal/palette"
)

// colorList is a repeatable flag; each value may also hold a comma list.
type colorList []color.NRGBA

func (c *colorList) String() string {
	if c == nil {
		return ""
	}
	return palette.HexList(*c)
}

func (c *colorList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		col, err := palette.Parse(part)
		if err != nil {
			return err
		}
		*c = append(*c, col)
	}
	return nil
}

// optionalColor records whether it was set so config colours survive.
type optionalColor struct {
	c   color.NRGBA
	set bool
}

func (o *optionalColor) String() string {
	if o == nil || !o.set {
		return ""
	}
	return palette.Hex(o.c)
}

func (o *optionalColor) Set(v string) error {
	col, err := palette.Parse(v)
	if err != nil {
		return err
	}
	o.c, o.set = col, true
	return nil
}
