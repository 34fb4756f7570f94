package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
)

// Embedded SVG icons for framemaker.
//
//go:embed icons/*.svg
var embeddedIcons embed.FS

const (
	// PlaceholderIcon is drawn inside the frame when no photo is set.
	PlaceholderIcon = "photo"
	// AppIcon is used for desktop notifications and the web page favicon.
	AppIcon = "ribbon"
)

var (
	loadIconsOnce sync.Once
	loadIconsErr  error

	svgData = map[string][]byte{}
)

func loadIcons() {
	entries, err := fs.ReadDir(embeddedIcons, "icons")
	if err != nil {
		loadIconsErr = err
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".svg") {
			continue
		}
		data, err := embeddedIcons.ReadFile(path.Join("icons", name))
		if err != nil {
			loadIconsErr = err
			return
		}
		svgData[strings.TrimSuffix(name, ".svg")] = data
	}
}

func ensureIcons() error {
	loadIconsOnce.Do(loadIcons)
	return loadIconsErr
}

// IconSVG returns a copy of the named SVG icon.
func IconSVG(name string) ([]byte, error) {
	if err := ensureIcons(); err != nil {
		return nil, err
	}
	data, ok := svgData[name]
	if !ok {
		return nil, fmt.Errorf("icon %q not embedded (have %s)", name, strings.Join(iconNames(), ", "))
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// iconNames lists the embedded icons.
func iconNames() []string {
	if err := ensureIcons(); err != nil {
		return nil
	}
	names := make([]string, 0, len(svgData))
	for name := range svgData {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
