package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/example/framemaker/internal/capture"
	"github.com/example/framemaker/internal/clipboard"
	"github.com/example/framemaker/internal/frame"
	"github.com/example/framemaker/internal/render"
)

type renderCmd struct {
	*root
	fs            *flag.FlagSet
	photo         string
	fromClipboard bool
	fromScreen    bool
	monitor       string
	listMonitors  bool
	message       string
	colors        colorList
	textColor     optionalColor
	zoom          float64
	panX          float64
	panY          float64
	size          int
	output        string
	stdout        bool
	toClipboard   bool
	shadow        bool

	out    io.Writer
	errOut io.Writer
}

func (c *renderCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseRenderCmd(args []string, r *root) (*renderCmd, error) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	c := &renderCmd{root: r, fs: fs, out: os.Stdout, errOut: os.Stderr}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.photo, "photo", "", "photo file (png, jpeg, gif, bmp, tiff, webp)")
	fs.BoolVar(&c.fromClipboard, "from-clipboard", false, "use the image on the clipboard as the photo")
	fs.BoolVar(&c.fromScreen, "from-screen", false, "grab the screen as the photo")
	fs.StringVar(&c.monitor, "monitor", "", "monitor for -from-screen: index, name or primary")
	fs.BoolVar(&c.listMonitors, "list-monitors", false, "list monitors for -monitor and exit")
	fs.StringVar(&c.message, "message", "", "text written along the ribbon")
	fs.Var(&c.colors, "color", "ribbon colour, repeat or comma separate for a gradient")
	fs.Var(&c.textColor, "text-color", "text colour")
	fs.Float64Var(&c.zoom, "zoom", 1, "zoom multiplier")
	fs.Float64Var(&c.panX, "pan-x", 0, "horizontal pan in pixels")
	fs.Float64Var(&c.panY, "pan-y", 0, "vertical pan in pixels")
	fs.IntVar(&c.size, "size", 0, fmt.Sprintf("output size in pixels, %d to %d (default from config)", frame.MinSize, frame.MaxSize))
	fs.StringVar(&c.output, "output", "", "output file (default derived from the message)")
	fs.BoolVar(&c.stdout, "stdout", false, "write PNG to stdout")
	fs.BoolVar(&c.toClipboard, "to-clipboard", false, "copy the frame to the clipboard")
	fs.BoolVar(&c.shadow, "shadow", false, "draw a shadow under the text")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *renderCmd) validate() error {
	sources := 0
	for _, on := range []bool{c.photo != "", c.fromClipboard, c.fromScreen} {
		if on {
			sources++
		}
	}
	if sources > 1 {
		return errors.New("-photo, -from-clipboard and -from-screen are mutually exclusive")
	}
	if c.monitor != "" && !c.fromScreen {
		return errors.New("-monitor requires -from-screen")
	}
	if c.stdout && c.toClipboard {
		return errors.New("-stdout cannot be used with -to-clipboard")
	}
	if c.stdout && c.output != "" {
		return errors.New("-stdout cannot be used with -output")
	}
	if c.size != 0 && (c.size < frame.MinSize || c.size > frame.MaxSize) {
		return fmt.Errorf("-size must be between %d and %d, got %d", frame.MinSize, frame.MaxSize, c.size)
	}
	if c.listMonitors && (sources > 0 || c.stdout || c.toClipboard || c.output != "") {
		return errors.New("-list-monitors cannot be combined with other input or output flags")
	}
	return nil
}

func (c *renderCmd) Run() error {
	if c.listMonitors {
		return c.printMonitors()
	}
	st, err := c.initialState()
	if err != nil {
		return err
	}
	img, err := c.loadPhoto()
	if err != nil {
		return err
	}
	st.SetImage(img)
	st.SetMessage(c.message)
	if len(c.colors) > 0 {
		st.SetRibbonColors(c.colors)
	}
	if c.textColor.set {
		st.SetTextColor(c.textColor.c)
	}
	st.SetZoom(c.zoom)
	st.SetPan(c.panX, c.panY)

	l := c.layout()
	if p, ok := c.cfg().Policy(); ok {
		st.Clamp(p, float64(l.Size))
	}

	out, err := frame.Render(st, l)
	if err != nil {
		return err
	}
	if c.stdout {
		return frame.EncodePNG(c.out, out)
	}
	if c.toClipboard {
		if err := clipboard.WriteImage(out); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(c.errOut, "copied frame to clipboard")
		c.notifyCopy("frame")
		if c.output == "" {
			return nil
		}
	}
	path := c.outputPath()
	if err := frame.SavePNG(path, out); err != nil {
		return err
	}
	fmt.Fprintf(c.errOut, "saved %s\n", path)
	c.notifySave(path)
	return nil
}

func (c *renderCmd) printMonitors() error {
	monitors, err := capture.ListMonitors()
	if err != nil {
		return fmt.Errorf("list monitors: %w", err)
	}
	for _, m := range monitors {
		fmt.Fprintln(c.out, m.String())
	}
	return nil
}

func (c *renderCmd) layout() frame.Layout {
	l := c.cfg().Layout()
	if c.size > 0 {
		l.Size = c.size
	}
	if c.shadow {
		l.TextShadow = render.DefaultShadowOptions()
	}
	l.Logger = c.logger()
	return l
}

func (c *renderCmd) outputPath() string {
	if c.output != "" {
		return c.output
	}
	return filepath.Join(c.cfg().SaveDir, frame.ExportFilename(c.message))
}

// loadPhoto returns nil when no source was given. An unreadable photo file
// is logged and skipped so the placeholder is drawn instead.
func (c *renderCmd) loadPhoto() (image.Image, error) {
	switch {
	case c.photo != "":
		img, err := frame.LoadPhoto(c.photo)
		if errors.Is(err, frame.ErrUnsupportedImage) {
			c.logger().Warn("ignoring photo", zap.String("path", c.photo), zap.Error(err))
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("load photo: %w", err)
		}
		return img, nil
	case c.fromClipboard:
		img, err := clipboard.ReadImage()
		if err != nil {
			return nil, fmt.Errorf("read clipboard: %w", err)
		}
		return img, nil
	case c.fromScreen:
		img, err := capture.Grab(c.monitor)
		if err != nil {
			return nil, err
		}
		detail := "desktop"
		if c.monitor != "" {
			detail = "monitor " + c.monitor
		}
		c.notifyGrab(detail, img)
		return img, nil
	}
	return nil, nil
}
