package main

import (
	"flag"

	"go.uber.org/zap"

	"github.com/example/framemaker/internal/editor"
	"github.com/example/framemaker/internal/preset"
)

type editCmd struct {
	*root
	fs        *flag.FlagSet
	photo     string
	message   string
	outputDir string
}

func (c *editCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	c := &editCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.photo, "photo", "", "photo to open")
	fs.StringVar(&c.message, "message", "", "initial ribbon text")
	fs.StringVar(&c.outputDir, "output-dir", "", "where Ctrl+S saves (default save_dir from config)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 && c.photo == "" {
		c.photo = fs.Arg(0)
	}
	return c, nil
}

func (c *editCmd) Run() error {
	st, err := c.initialState()
	if err != nil {
		return err
	}
	st.SetMessage(c.message)

	list, current := c.presets()
	policy, clamp := c.cfg().Policy()
	layout := c.cfg().Layout()
	layout.Logger = c.logger()

	dir := c.outputDir
	if dir == "" {
		dir = c.cfg().SaveDir
	}

	ed := editor.New(
		editor.WithState(st),
		editor.WithLayout(layout),
		editor.WithPolicy(policy, clamp),
		editor.WithPresets(list, current),
		editor.WithPhotoPath(c.photo),
		editor.WithOutputDir(dir),
		editor.WithNotifier(c.notifier),
		editor.WithLogger(c.logger()),
		editor.WithOnClose(func() { c.logger().Debug("editor closed") }),
	)
	ed.Run()
	return nil
}

// presets loads every known preset for Tab cycling. The active preset is
// first loaded by name so a file path given with -preset is included.
func (c *editCmd) presets() ([]*preset.Preset, int) {
	loader := c.presetLoader()
	var list []*preset.Preset
	current := 0
	if active, err := loader.Load(c.cfg().Preset); err == nil {
		list = append(list, active)
	}
	for _, name := range loader.List() {
		if len(list) > 0 && list[0].Name == name {
			continue
		}
		p, err := loader.Load(name)
		if err != nil {
			c.logger().Warn("skipping preset", zap.String("name", name), zap.Error(err))
			continue
		}
		list = append(list, p)
	}
	return list, current
}
