package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/example/framemaker/internal/frame"
	"github.com/example/framemaker/internal/palette"
	"github.com/example/framemaker/internal/preset"
	"github.com/example/framemaker/internal/render"
)

// Frame overrides the compositor layout.
type Frame struct {
	Size        int
	SpanStart   float64
	SpanEnd     float64
	Padding     float64
	CharSpacing float64
	StrokeRatio float64
	Fade        float64
	TextRatio   float64
	Background  color.NRGBA
	Shadow      bool
}

// Ribbon holds the default ribbon colours. Empty Colors means use the preset.
type Ribbon struct {
	Colors    []color.NRGBA
	TextColor *color.NRGBA
}

// Viewport controls the optional pan and zoom clamp.
type Viewport struct {
	Clamp   bool
	MinZoom float64
	MaxZoom float64
}

// Notify holds notification settings.
type Notify struct {
	Save bool
	Copy bool
}

// Server holds the HTTP service settings.
type Server struct {
	Addr string
}

// Config holds the application configuration.
type Config struct {
	Preset   string
	SaveDir  string
	Frame    Frame
	Ribbon   Ribbon
	Viewport Viewport
	Notify   Notify
	Server   Server
	Presets  map[string]*preset.Preset
}

// New creates a new Config with defaults.
func New() *Config {
	l := frame.DefaultLayout()
	p := frame.DefaultViewportPolicy()
	return &Config{
		Frame: Frame{
			Size:        l.Size,
			SpanStart:   l.SpanStart,
			SpanEnd:     l.SpanEnd,
			Padding:     l.Padding,
			CharSpacing: l.CharSpacing,
			StrokeRatio: l.StrokeRatio,
			Fade:        l.FadeFraction,
			TextRatio:   l.TextRatio,
			Background:  color.NRGBA{R: 240, G: 240, B: 240, A: 255},
		},
		Viewport: Viewport{Clamp: true, MinZoom: p.MinZoom, MaxZoom: p.MaxZoom},
		Server:   Server{Addr: ":8080"},
		Presets:  make(map[string]*preset.Preset),
	}
}

// Layout builds the compositor layout from the [frame] section.
func (c *Config) Layout() frame.Layout {
	l := frame.DefaultLayout()
	f := c.Frame
	if f.Size > 0 {
		l.Size = f.Size
	}
	l.SpanStart = f.SpanStart
	l.SpanEnd = f.SpanEnd
	l.Padding = f.Padding
	l.CharSpacing = f.CharSpacing
	if f.StrokeRatio > 0 {
		l.StrokeRatio = f.StrokeRatio
	}
	l.FadeFraction = f.Fade
	if f.TextRatio > 0 {
		l.TextRatio = f.TextRatio
	}
	l.Background = f.Background
	if f.Shadow {
		l.TextShadow = render.DefaultShadowOptions()
	}
	return l
}

// Policy returns the viewport clamp, or false when clamping is off.
func (c *Config) Policy() (frame.ViewportPolicy, bool) {
	return frame.ViewportPolicy{MinZoom: c.Viewport.MinZoom, MaxZoom: c.Viewport.MaxZoom, Contain: true}, c.Viewport.Clamp
}

// PresetLoader returns a preset loader that also sees the [preset.*]
// sections.
func (c *Config) PresetLoader() *preset.Loader {
	l := preset.NewLoader()
	l.Extra = c.Presets
	return l
}

// NewState returns the starting frame state: the configured preset with
// the [ribbon] overrides on top.
func (c *Config) NewState() (frame.State, error) {
	st := frame.NewState()
	p, err := c.PresetLoader().Load(c.Preset)
	if err != nil {
		return st, err
	}
	p.Apply(&st)
	if len(c.Ribbon.Colors) > 0 {
		st.SetRibbonColors(c.Ribbon.Colors)
	}
	if c.Ribbon.TextColor != nil {
		st.SetTextColor(*c.Ribbon.TextColor)
	}
	return st, nil
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Preset != "" {
		fmt.Fprintf(&sb, "preset = %s\n", c.Preset)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	sb.WriteString("\n")

	f := c.Frame
	sb.WriteString("[frame]\n")
	fmt.Fprintf(&sb, "size = %d\n", f.Size)
	fmt.Fprintf(&sb, "span_start = %g\n", f.SpanStart)
	fmt.Fprintf(&sb, "span_end = %g\n", f.SpanEnd)
	fmt.Fprintf(&sb, "padding = %g\n", f.Padding)
	fmt.Fprintf(&sb, "char_spacing = %g\n", f.CharSpacing)
	fmt.Fprintf(&sb, "stroke_ratio = %g\n", f.StrokeRatio)
	fmt.Fprintf(&sb, "fade = %g\n", f.Fade)
	fmt.Fprintf(&sb, "text_ratio = %g\n", f.TextRatio)
	fmt.Fprintf(&sb, "background = %s\n", palette.Hex(f.Background))
	fmt.Fprintf(&sb, "shadow = %v\n", f.Shadow)
	sb.WriteString("\n")

	if len(c.Ribbon.Colors) > 0 || c.Ribbon.TextColor != nil {
		sb.WriteString("[ribbon]\n")
		if len(c.Ribbon.Colors) > 0 {
			fmt.Fprintf(&sb, "colors = %s\n", palette.HexList(c.Ribbon.Colors))
		}
		if c.Ribbon.TextColor != nil {
			fmt.Fprintf(&sb, "text_color = %s\n", palette.Hex(*c.Ribbon.TextColor))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("[viewport]\n")
	fmt.Fprintf(&sb, "clamp = %v\n", c.Viewport.Clamp)
	fmt.Fprintf(&sb, "min_zoom = %g\n", c.Viewport.MinZoom)
	fmt.Fprintf(&sb, "max_zoom = %g\n", c.Viewport.MaxZoom)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	sb.WriteString("[server]\n")
	fmt.Fprintf(&sb, "addr = %s\n", c.Server.Addr)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var names []string
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p := c.Presets[name]
		fmt.Fprintf(&sb, "[preset.%s]\n", name)
		fmt.Fprintf(&sb, "colors = %s\n", palette.HexList(p.Colors))
		fmt.Fprintf(&sb, "text = %s\n", palette.Hex(p.Text))
		sb.WriteString("\n")
	}

	return sb.String()
}
