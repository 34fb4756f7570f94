// Package editor is the interactive frame editor window.
package editor

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/framemaker/internal/clipboard"
	"github.com/example/framemaker/internal/frame"
	"github.com/example/framemaker/internal/notify"
	"github.com/example/framemaker/internal/preset"
)

// frameDropThreshold specifies how many consecutive frames can be canceled
// before a draw is allowed to complete to keep the UI responsive.
const frameDropThreshold = 10

// photoLoaded is sent to the window when an asynchronous decode finishes.
type photoLoaded struct {
	img    image.Image
	err    error
	source string
}

// textPasted carries clipboard text that should extend the message.
type textPasted struct {
	text string
}

// Editor owns the configuration for one editor window.
type Editor struct {
	m         model
	photoPath string
	outputDir string
	notifier  *notify.Notifier
	log       *zap.Logger
	onClose   func()
}

// Option configures an Editor.
type Option func(*Editor)

// WithState sets the initial frame state.
func WithState(st frame.State) Option { return func(e *Editor) { e.m.state = st } }

// WithLayout sets the compositor layout.
func WithLayout(l frame.Layout) Option { return func(e *Editor) { e.m.layout = l } }

// WithPolicy enables or disables the pan and zoom clamp.
func WithPolicy(p frame.ViewportPolicy, enabled bool) Option {
	return func(e *Editor) { e.m.policy, e.m.clamp = p, enabled }
}

// WithPresets sets the presets Tab cycles through, starting after current.
func WithPresets(list []*preset.Preset, current int) Option {
	return func(e *Editor) { e.m.presets, e.m.presetIdx = list, current }
}

// WithPhotoPath loads a photo from disk once the window is open.
func WithPhotoPath(path string) Option { return func(e *Editor) { e.photoPath = path } }

// WithOutputDir sets where Ctrl+S writes.
func WithOutputDir(dir string) Option { return func(e *Editor) { e.outputDir = dir } }

// WithNotifier sets the desktop notifier for save and copy.
func WithNotifier(n *notify.Notifier) Option { return func(e *Editor) { e.notifier = n } }

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option { return func(e *Editor) { e.log = l } }

// WithOnClose registers a callback run when the window closes.
func WithOnClose(fn func()) Option { return func(e *Editor) { e.onClose = fn } }

// New creates an Editor. Without options it shows the default state.
func New(opts ...Option) *Editor {
	e := &Editor{
		m: model{
			state:  frame.NewState(),
			layout: frame.DefaultLayout(),
			policy: frame.DefaultViewportPolicy(),
			clamp:  true,
			hover:  -1,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = zap.NewNop()
	}
	e.m.layout.Logger = e.log
	e.m.settle()
	return e
}

// queuePaint replaces any pending state in ch with st. It never blocks: ch
// has one slot and only the caller sends.
func queuePaint(ch chan paintState, st paintState) {
	select {
	case <-ch:
	default:
	}
	ch <- st
}

// Run opens the window and blocks until it is closed.
func (e *Editor) Run() { driver.Main(e.Main) }

// Main runs the event loop on s.
func (e *Editor) Main(s screen.Screen) {
	m := &e.m
	ws := m.windowSize()
	width, height := ws.X, ws.Y
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "Frame Maker"})
	if err != nil {
		e.log.Error("new window", zap.Error(err))
		return
	}
	defer w.Release()
	if e.onClose != nil {
		defer e.onClose()
	}

	if e.photoPath != "" {
		go e.loadPhoto(w, e.photoPath)
	}

	var paintMu sync.Mutex
	var paintCancel context.CancelFunc
	var dropCount int
	paintCh := make(chan paintState, 1)
	paintDone := make(chan struct{})
	defer func() {
		close(paintCh)
		<-paintDone
	}()
	go func() {
		defer close(paintDone)
		for st := range paintCh {
			ctx, cancel := context.WithCancel(context.Background())
			paintMu.Lock()
			paintCancel = cancel
			paintMu.Unlock()
			drawFrame(ctx, s, w, st, e.log)
			paintMu.Lock()
			paintCancel = nil
			if ctx.Err() == nil {
				dropCount = 0
			}
			paintMu.Unlock()
			cancel()
		}
	}()

	for {
		switch ev := w.NextEvent().(type) {
		case lifecycle.Event:
			if ev.To == lifecycle.StageDead {
				paintMu.Lock()
				if paintCancel != nil {
					paintCancel()
				}
				paintMu.Unlock()
				return
			}
		case size.Event:
			width, height = ev.WidthPx, ev.HeightPx
			w.Send(paint.Event{})
		case paint.Event:
			paintMu.Lock()
			if paintCancel != nil && dropCount < frameDropThreshold {
				paintCancel()
				dropCount++
			}
			paintMu.Unlock()
			queuePaint(paintCh, m.snapshot(width, height, time.Now()))
		case photoLoaded:
			if ev.err != nil {
				e.log.Warn("photo not loaded", zap.String("source", ev.source), zap.Error(ev.err))
				m.setStatus(fmt.Sprintf("%s: not an image", ev.source), time.Now())
			} else {
				m.setPhoto(ev.img)
				m.setStatus(fmt.Sprintf("loaded %s", ev.source), time.Now())
			}
			w.Send(paint.Event{})
		case textPasted:
			for _, r := range ev.text {
				m.typeRune(r)
			}
			w.Send(paint.Event{})
		case key.Event:
			switch m.handleKey(ev) {
			case actQuit:
				paintMu.Lock()
				if paintCancel != nil {
					paintCancel()
				}
				paintMu.Unlock()
				return
			case actSave:
				e.save(time.Now())
			case actCopy:
				e.copy(time.Now())
			case actPaste:
				go e.paste(w)
			case actChanged:
			default:
				continue
			}
			w.Send(paint.Event{})
		case mouse.Event:
			res, err := m.handleMouse(ev)
			if err != nil {
				m.setStatus(err.Error(), time.Now())
				res = actChanged
			}
			if res == actChanged {
				w.Send(paint.Event{})
			}
		case error:
			e.log.Error("window event", zap.Error(ev))
		}
	}
}

func (e *Editor) loadPhoto(w screen.Window, path string) {
	img, err := frame.LoadPhoto(path)
	w.Send(photoLoaded{img: img, err: err, source: filepath.Base(path)})
}

// paste prefers an image on the clipboard and falls back to text.
func (e *Editor) paste(w screen.Window) {
	img, err := clipboard.ReadImage()
	if err == nil {
		w.Send(photoLoaded{img: img, source: "clipboard"})
		return
	}
	if errors.Is(err, frame.ErrUnsupportedImage) || errors.Is(err, clipboard.ErrEmpty) {
		if text, terr := clipboard.ReadText(); terr == nil {
			w.Send(textPasted{text: text})
			return
		}
	}
	w.Send(photoLoaded{err: err, source: "clipboard"})
}

func (e *Editor) render() (*image.RGBA, error) {
	return frame.Render(e.m.state, e.m.layout)
}

func (e *Editor) save(now time.Time) {
	img, err := e.render()
	if err != nil {
		e.log.Error("render", zap.Error(err))
		return
	}
	path := filepath.Join(e.outputDir, frame.ExportFilename(e.m.state.Message))
	if err := frame.SavePNG(path, img); err != nil {
		e.log.Error("save", zap.String("path", path), zap.Error(err))
		e.m.setStatus("save failed", now)
		return
	}
	e.log.Info("saved", zap.String("path", path))
	e.m.setStatus(fmt.Sprintf("saved %s", path), now)
	e.notifier.Save(path)
}

func (e *Editor) copy(now time.Time) {
	img, err := e.render()
	if err != nil {
		e.log.Error("render", zap.Error(err))
		return
	}
	if err := clipboard.WriteImage(img); err != nil {
		e.log.Warn("copy", zap.Error(err))
		e.m.setStatus("copy failed", now)
		return
	}
	e.m.setStatus("frame copied to clipboard", now)
	e.notifier.Copy("frame")
}
