package preset

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/example/framemaker/internal/palette"
)

// Parse reads a preset definition. Each line is "Key: value"; Colors takes a
// comma separated list.
func Parse(r io.Reader) (*Preset, error) {
	p := Default()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			key, value, ok = strings.Cut(line, "=")
		}
		if !ok {
			continue
		}
		if err := p.Set(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return nil, err
		}
	}
	return p, scanner.Err()
}

// Set assigns a single key. Unknown keys are ignored.
func (p *Preset) Set(key, value string) error {
	switch strings.ToLower(key) {
	case "name":
		p.Name = value
	case "colors", "colours":
		colors, err := palette.ParseList(value)
		if err != nil {
			return fmt.Errorf("invalid colors: %w", err)
		}
		if len(colors) == 0 {
			return fmt.Errorf("preset %s: no colors", p.Name)
		}
		p.Colors = colors
	case "text":
		c, err := palette.Parse(value)
		if err != nil {
			return fmt.Errorf("invalid text color: %w", err)
		}
		p.Text = c
	}
	return nil
}

// String renders the preset in the format Parse reads.
func (p *Preset) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %s\n", p.Name)
	fmt.Fprintf(&sb, "Colors: %s\n", palette.HexList(p.Colors))
	fmt.Fprintf(&sb, "Text: %s\n", palette.Hex(p.Text))
	return sb.String()
}
