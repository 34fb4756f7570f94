package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/framemaker/internal/frame"
	"github.com/example/framemaker/internal/palette"
	"github.com/example/framemaker/internal/preset"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var section string
	var current *preset.Preset

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.ToLower(strings.TrimSpace(line[1 : len(line)-1]))
			current = nil
			if name, ok := strings.CutPrefix(section, "preset."); ok {
				current = preset.Default()
				current.Name = name
				cfg.Presets[name] = current
			}
			continue
		}

		// Key = Value or Key: Value
		var parts []string
		if strings.Contains(line, "=") {
			parts = strings.SplitN(line, "=", 2)
		} else if strings.Contains(line, ":") {
			parts = strings.SplitN(line, ":", 2)
		} else {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])
		if strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") && len(value) >= 2 {
			value = value[1 : len(value)-1]
		}

		var err error
		switch {
		case current != nil:
			if key != "name" {
				err = current.Set(key, value)
			}
		case section == "":
			err = setRootField(cfg, key, value)
		case section == "frame":
			err = setFrameField(&cfg.Frame, key, value)
		case section == "ribbon":
			err = setRibbonField(&cfg.Ribbon, key, value)
		case section == "viewport":
			err = setViewportField(&cfg.Viewport, key, value)
		case section == "notify":
			err = setNotifyField(&cfg.Notify, key, value)
		case section == "server":
			if key == "addr" {
				cfg.Server.Addr = value
			}
		}
		if err != nil {
			if section == "" {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
			return nil, fmt.Errorf("error in section [%s]: %w", section, err)
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch key {
	case "preset":
		cfg.Preset = value
	case "save_dir":
		cfg.SaveDir = value
	}
	return nil
}

func setFrameField(f *Frame, key, value string) error {
	switch key {
	case "size":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid size %q", value)
		}
		if n < frame.MinSize || n > frame.MaxSize {
			return fmt.Errorf("size %d outside %d..%d", n, frame.MinSize, frame.MaxSize)
		}
		f.Size = n
		return nil
	case "background":
		c, err := palette.Parse(value)
		if err != nil {
			return err
		}
		f.Background = c
		return nil
	case "shadow":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for key %s: %w", key, err)
		}
		f.Shadow = b
		return nil
	}
	dst := map[string]*float64{
		"span_start":   &f.SpanStart,
		"span_end":     &f.SpanEnd,
		"padding":      &f.Padding,
		"char_spacing": &f.CharSpacing,
		"stroke_ratio": &f.StrokeRatio,
		"fade":         &f.Fade,
		"text_ratio":   &f.TextRatio,
	}[key]
	if dst == nil {
		return nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid number for key %s: %w", key, err)
	}
	*dst = v
	return nil
}

func setRibbonField(r *Ribbon, key, value string) error {
	switch key {
	case "colors", "colours":
		colors, err := palette.ParseList(value)
		if err != nil {
			return err
		}
		r.Colors = colors
	case "text_color":
		c, err := palette.Parse(value)
		if err != nil {
			return err
		}
		r.TextColor = &c
	}
	return nil
}

func setViewportField(v *Viewport, key, value string) error {
	switch key {
	case "clamp":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for key %s: %w", key, err)
		}
		v.Clamp = b
	case "min_zoom", "max_zoom":
		z, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid number for key %s: %w", key, err)
		}
		if key == "min_zoom" {
			v.MinZoom = z
		} else {
			v.MaxZoom = z
		}
	}
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch key {
	case "save":
		n.Save = b
	case "copy":
		n.Copy = b
	}
	return nil
}
