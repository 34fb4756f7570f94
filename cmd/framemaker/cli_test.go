package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/example/framemaker/internal/config"
	"github.com/example/framemaker/internal/notify"
	"github.com/example/framemaker/internal/preset"
)

func testRoot(t *testing.T) *root {
	t.Helper()
	cfg := config.New()
	cfg.SaveDir = t.TempDir()
	return &root{
		program:  "framemaker",
		config:   cfg,
		log:      zap.NewNop(),
		notifier: notify.New(notify.DefaultPreferences(), zap.NewNop()),
	}
}

func TestRenderFlagConflicts(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"two sources", []string{"-photo", "a.png", "-from-clipboard"}, "mutually exclusive"},
		{"monitor without screen", []string{"-monitor", "0"}, "-monitor requires -from-screen"},
		{"stdout and clipboard", []string{"-stdout", "-to-clipboard"}, "-stdout cannot be used with -to-clipboard"},
		{"stdout and output", []string{"-stdout", "-output", "x.png"}, "-stdout cannot be used with -output"},
		{"negative size", []string{"-size", "-5"}, "-size must be between"},
		{"huge size", []string{"-size", "100000"}, "-size must be between 64 and 2048"},
		{"tiny size", []string{"-size", "10"}, "-size must be between"},
		{"list monitors with output", []string{"-list-monitors", "-stdout"}, "-list-monitors cannot be combined"},
		{"list monitors with photo", []string{"-list-monitors", "-from-screen"}, "-list-monitors cannot be combined"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testRoot(t)
			_, err := parseRenderCmd(tt.args, r.subcommand("render"))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestRenderSavesDerivedFilename(t *testing.T) {
	r := testRoot(t)
	cmd, err := parseRenderCmd([]string{"-message", "Merry Xmas!", "-size", "128"}, r.subcommand("render"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var stderr bytes.Buffer
	cmd.errOut = &stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	path := filepath.Join(r.config.SaveDir, "merry_xmas_.png")
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 128 {
		t.Fatalf("unexpected size %v", b)
	}
	if got := stderr.String(); got != "saved "+path+"\n" {
		t.Fatalf("unexpected stderr %q", got)
	}
}

func TestRenderStdout(t *testing.T) {
	r := testRoot(t)
	cmd, err := parseRenderCmd([]string{"-stdout", "-color", "gold,#000", "-text-color", "black"}, r.subcommand("render"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(cmd.colors) != 2 || !cmd.textColor.set {
		t.Fatalf("colour flags not parsed: %v %+v", cmd.colors, cmd.textColor)
	}
	var out bytes.Buffer
	cmd.out = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	img, err := png.Decode(&out)
	if err != nil {
		t.Fatalf("decode stdout: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 {
		t.Fatalf("unexpected size %v", b)
	}
	entries, _ := os.ReadDir(r.config.SaveDir)
	if len(entries) != 0 {
		t.Fatalf("stdout render wrote files: %v", entries)
	}
}

func TestRenderPhotoAndUnsupported(t *testing.T) {
	r := testRoot(t)
	dir := t.TempDir()
	notImage := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(notImage, []byte("just text"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out", "frame.png")
	cmd, err := parseRenderCmd([]string{"-photo", notImage, "-output", out}, r.subcommand("render"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cmd.errOut = &bytes.Buffer{}
	if err := cmd.Run(); err != nil {
		t.Fatalf("unsupported photo should fall back to the placeholder: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output missing: %v", err)
	}

	cmd, err = parseRenderCmd([]string{"-photo", filepath.Join(dir, "missing.png")}, r.subcommand("render"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err == nil || !strings.Contains(err.Error(), "load photo") {
		t.Fatalf("expected load photo error, got %v", err)
	}
}

func TestRenderUnknownPreset(t *testing.T) {
	r := testRoot(t)
	r.config.Preset = "does-not-exist"
	cmd, err := parseRenderCmd(nil, r.subcommand("render"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected preset error, got %v", err)
	}
}

func TestPresetsListing(t *testing.T) {
	r := testRoot(t)
	r.config.Preset = "ocean"
	cmd, err := parsePresetsCmd(nil, r.subcommand("presets"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var out bytes.Buffer
	cmd.out = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) < len(preset.Embedded()) {
		t.Fatalf("expected at least %d presets, got %q", len(preset.Embedded()), out.String())
	}
	var marked []string
	for _, l := range lines {
		if strings.HasPrefix(l, "*") {
			marked = append(marked, l)
		}
	}
	if len(marked) != 1 || !strings.Contains(marked[0], "ocean") {
		t.Fatalf("expected ocean to be marked, got %q", marked)
	}
	if !strings.Contains(out.String(), "#d42426") {
		t.Fatalf("christmas colours missing: %q", out.String())
	}
}

func TestConfigPrintAndSave(t *testing.T) {
	r := testRoot(t)
	cmd, err := parseConfigCmd([]string{"print"}, r.subcommand("config"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var out bytes.Buffer
	cmd.out = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("print: %v", err)
	}
	if !strings.Contains(out.String(), "[frame]") {
		t.Fatalf("missing [frame] section: %q", out.String())
	}

	path := filepath.Join(t.TempDir(), "sub", "config.rc")
	cmd, err = parseConfigCmd([]string{"save", path}, r.subcommand("config"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved: %v", err)
	}
	if string(data) != r.config.String() {
		t.Fatalf("saved config differs:\n%s", data)
	}
}

func TestConfigUnknownSubcommand(t *testing.T) {
	r := testRoot(t)
	cmd, err := parseConfigCmd([]string{"frobnicate"}, r.subcommand("config"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err == nil || !strings.Contains(err.Error(), "unknown config command") {
		t.Fatalf("expected unknown command error, got %v", err)
	}
	cmd, _ = parseConfigCmd(nil, r.subcommand("config"))
	var uerr *UsageError
	if err := cmd.Run(); !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestUsageErrors(t *testing.T) {
	r := newRoot()
	err := r.Run(nil)
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
	help := uerr.Error()
	for _, want := range []string{"Usage: framemaker", "render", "-notify-save"} {
		if !strings.Contains(help, want) {
			t.Fatalf("help missing %q:\n%s", want, help)
		}
	}

	r = testRoot(t)
	cmd, err := parseRenderCmd(nil, r.subcommand("render"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	help = (&UsageError{of: cmd}).Error()
	if !strings.Contains(help, "Usage: framemaker render") || !strings.Contains(help, "-from-clipboard") {
		t.Fatalf("render help incomplete:\n%s", help)
	}
}
