package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/example/framemaker/internal/config"
	"github.com/example/framemaker/internal/frame"
	"github.com/example/framemaker/internal/notify"
	"github.com/example/framemaker/internal/preset"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs         *flag.FlagSet
	program    string
	notifier   *notify.Notifier
	config     *config.Config
	log        *zap.Logger
	configPath string
	presetName string
	saveAlerts bool
	copyAlerts bool
	grabAlerts bool
	verbose    bool
}

func (r *root) Program() string {
	return r.program
}

func (r *root) subcommand(name string) *root {
	program := strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
	return &root{
		program:    program,
		notifier:   r.notifier,
		config:     r.config,
		log:        r.log,
		configPath: r.configPath,
		presetName: r.presetName,
		saveAlerts: r.saveAlerts,
		copyAlerts: r.copyAlerts,
		grabAlerts: r.grabAlerts,
		verbose:    r.verbose,
	}
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	r := &root{
		fs:      flag.NewFlagSet("framemaker", flag.ExitOnError),
		program: "framemaker",
	}
	r.fs.StringVar(&r.configPath, "config", configPathOverride, "read configuration from this file")
	r.fs.StringVar(&r.presetName, "preset", "", "ribbon preset name or .preset file")
	r.fs.BoolVar(&r.saveAlerts, "notify-save", false, "show a desktop notification after saving a frame")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", false, "show a desktop notification after copying to the clipboard")
	r.fs.BoolVar(&r.grabAlerts, "notify-grab", false, "show a desktop notification after grabbing the screen")
	r.fs.BoolVar(&r.verbose, "v", false, "verbose logging")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	r.log = newLogger(r.verbose)
	defer func() { _ = r.log.Sync() }()

	cfg, err := config.NewLoader(version, r.configPath).Load()
	if err != nil {
		if r.configPath != "" {
			return err
		}
		r.log.Warn("failed to load config, using defaults", zap.Error(err))
		cfg = config.New()
	}
	if r.presetName == "" {
		r.presetName = os.Getenv("FRAMEMAKER_PRESET")
	}
	if r.presetName != "" {
		cfg.Preset = r.presetName
	}
	r.config = cfg

	r.notifier = notify.New(notify.LoadPreferences(), r.log)
	r.notifier.Enable(notify.EventSave, r.saveAlerts || cfg.Notify.Save)
	r.notifier.Enable(notify.EventCopy, r.copyAlerts || cfg.Notify.Copy)
	r.notifier.Enable(notify.EventGrab, r.grabAlerts)

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var cmd runnable
	switch cmdName {
	case "render":
		cmd, err = parseRenderCmd(subArgs, r.subcommand(cmdName))
	case "edit":
		cmd, err = parseEditCmd(subArgs, r.subcommand(cmdName))
	case "serve":
		cmd, err = parseServeCmd(subArgs, r.subcommand(cmdName))
	case "presets":
		cmd, err = parsePresetsCmd(subArgs, r.subcommand(cmdName))
	case "config":
		cmd, err = parseConfigCmd(subArgs, r.subcommand(cmdName))
	case "version":
		cmd = &versionCmd{root: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

// newLogger writes warnings to stderr, or everything with -v.
func newLogger(verbose bool) *zap.Logger {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.DisableStacktrace = true
		cfg.Sampling = nil
	}
	cfg.OutputPaths = []string{"stderr"}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func (r *root) logger() *zap.Logger {
	if r == nil || r.log == nil {
		return zap.NewNop()
	}
	return r.log
}

func (r *root) cfg() *config.Config {
	if r == nil || r.config == nil {
		return config.New()
	}
	return r.config
}

// initialState resolves the preset and ribbon overrides from config.
func (r *root) initialState() (frame.State, error) {
	st, err := r.cfg().NewState()
	if err != nil {
		return st, fmt.Errorf("preset: %w", err)
	}
	return st, nil
}

func (r *root) presetLoader() *preset.Loader {
	return r.cfg().PresetLoader()
}

func (r *root) notifySave(path string) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Save(path)
}

func (r *root) notifyCopy(detail string) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Copy(detail)
}

func (r *root) notifyGrab(detail string, img image.Image) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Grab(detail, img)
}
