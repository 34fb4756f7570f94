package preset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const ext = ".preset"

// Loader finds presets on disk and in the binary.
type Loader struct {
	ConfigDir string
	SystemDir string
	// Extra holds presets defined inline in the config file. They win over
	// every other source.
	Extra map[string]*Preset
}

// NewLoader creates a Loader with the standard directories.
func NewLoader() *Loader {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return &Loader{
		ConfigDir: filepath.Join(dir, "framemaker", "presets"),
		SystemDir: "/usr/share/framemaker/presets",
	}
}

// Load resolves name in order: config sections, a file path, the embedded
// set, ConfigDir, then SystemDir. An empty name gives Default.
func (l *Loader) Load(name string) (*Preset, error) {
	if name == "" {
		return Default(), nil
	}
	if p, ok := l.Extra[name]; ok {
		return p, nil
	}

	if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
		return parseFile(name)
	}

	filename := name
	if !strings.HasSuffix(filename, ext) {
		filename += ext
	}

	if f, err := embedded.Open("defaults/" + filename); err == nil {
		defer f.Close()
		return Parse(f)
	}

	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return parseFile(path)
		}
	}

	return nil, fmt.Errorf("preset '%s' not found", name)
}

// List returns every preset name Load can resolve without a path, sorted.
func (l *Loader) List() []string {
	seen := map[string]bool{}
	for _, n := range Embedded() {
		seen[n] = true
	}
	for n := range l.Extra {
		seen[n] = true
	}
	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		if dir == "" {
			continue
		}
		matches, _ := filepath.Glob(filepath.Join(dir, "*"+ext))
		for _, m := range matches {
			seen[strings.TrimSuffix(filepath.Base(m), ext)] = true
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func parseFile(path string) (*Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
