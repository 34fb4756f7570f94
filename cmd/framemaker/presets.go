package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/framemaker/internal/palette"
	"github.com/example/framemaker/internal/preset"
)

type presetsCmd struct {
	*root
	fs  *flag.FlagSet
	out io.Writer
}

func (c *presetsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parsePresetsCmd(args []string, r *root) (*presetsCmd, error) {
	fs := flag.NewFlagSet("presets", flag.ExitOnError)
	c := &presetsCmd{root: r, fs: fs, out: os.Stdout}
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *presetsCmd) Run() error {
	loader := c.presetLoader()
	active := c.cfg().Preset
	if active == "" {
		active = preset.DefaultName
	}
	for _, name := range loader.List() {
		p, err := loader.Load(name)
		if err != nil {
			fmt.Fprintf(c.out, "  %-12s error: %v\n", name, err)
			continue
		}
		mark := " "
		if name == active {
			mark = "*"
		}
		var swatches strings.Builder
		for _, col := range p.Colors {
			swatches.WriteString(palette.ANSI(col))
		}
		fmt.Fprintf(c.out, "%s %-12s %s %s text %s\n", mark, name, swatches.String(), palette.HexList(p.Colors), palette.Hex(p.Text))
	}
	return nil
}
