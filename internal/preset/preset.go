// Package preset provides named ribbon palettes.
package preset

import (
	"embed"
	"image/color"
	"io/fs"
	"sort"
	"strings"

	"github.com/example/framemaker/internal/frame"
)

//go:embed defaults/*.preset
var embedded embed.FS

// DefaultName is the preset used when none is configured.
const DefaultName = "christmas"

// Preset is a ribbon palette with a matching text colour.
type Preset struct {
	Name   string
	Colors []color.NRGBA
	Text   color.NRGBA
}

// Default returns the built-in red and green palette.
func Default() *Preset {
	return &Preset{
		Name:   DefaultName,
		Colors: append([]color.NRGBA(nil), frame.DefaultRibbonColors...),
		Text:   frame.DefaultTextColor,
	}
}

// Apply copies the preset colours into st.
func (p *Preset) Apply(st *frame.State) {
	if p == nil || st == nil {
		return
	}
	if len(p.Colors) > 0 {
		st.SetRibbonColors(p.Colors)
	}
	st.SetTextColor(p.Text)
}

// Embedded lists the names of the built-in presets.
func Embedded() []string {
	entries, err := fs.ReadDir(embedded, "defaults")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ext); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
