package editor

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/framemaker/internal/frame"
)

var (
	chrome    = color.NRGBA{R: 250, G: 250, B: 250, A: 255}
	outline   = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	statusInk = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
)

// paintState is an immutable copy of everything drawFrame needs.
type paintState struct {
	width, height int
	state         frame.State
	layout        frame.Layout
	swatches      []swatch
	status        string
}

type swatch struct {
	rect  image.Rectangle
	color color.NRGBA
	add   bool
}

func (m *model) snapshot(width, height int, now time.Time) paintState {
	st := m.state
	st.RibbonColors = append([]color.NRGBA(nil), m.state.RibbonColors...)
	ps := paintState{
		width:  width,
		height: height,
		state:  st,
		layout: m.layout,
		status: m.statusAt(now),
	}
	for i := 0; i <= len(st.RibbonColors); i++ {
		ps.swatches = append(ps.swatches, swatch{
			rect:  m.swatchRect(i),
			color: m.swatchColor(i),
			add:   i == len(st.RibbonColors),
		})
	}
	if ps.status == "" {
		ps.status = frame.ExportFilename(st.Message)
	}
	return ps
}

func drawFrame(ctx context.Context, s screen.Screen, w screen.Window, st paintState, log *zap.Logger) {
	if st.width <= 0 || st.height <= 0 {
		return
	}
	b, err := s.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		log.Error("new buffer", zap.Error(err))
		return
	}
	defer b.Release()

	dst := b.RGBA()
	draw.Draw(dst, dst.Bounds(), image.NewUniform(chrome), image.Point{}, draw.Src)
	if err := frame.Compose(dst, st.state, st.layout); err != nil {
		log.Error("compose", zap.Error(err))
		return
	}
	if ctx.Err() != nil {
		return
	}

	drawSwatches(dst, st.swatches)
	drawStatus(dst, st.status, st.layout.Size+stripHeight)

	if ctx.Err() != nil {
		return
	}
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

func drawSwatches(dst *image.RGBA, swatches []swatch) {
	for _, sw := range swatches {
		draw.Draw(dst, sw.rect, image.NewUniform(sw.color), image.Point{}, draw.Over)
		drawBorder(dst, sw.rect, outline)
		if sw.add {
			c := sw.rect.Min.Add(image.Pt(sw.rect.Dx()/2, sw.rect.Dy()/2))
			draw.Draw(dst, image.Rect(c.X-5, c.Y-1, c.X+6, c.Y+1), image.NewUniform(outline), image.Point{}, draw.Src)
			draw.Draw(dst, image.Rect(c.X-1, c.Y-5, c.X+1, c.Y+6), image.NewUniform(outline), image.Point{}, draw.Src)
		}
	}
}

func drawBorder(dst *image.RGBA, r image.Rectangle, col color.Color) {
	u := image.NewUniform(col)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
}

func drawStatus(dst *image.RGBA, msg string, top int) {
	if msg == "" {
		return
	}
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(statusInk), Face: face}
	d.Dot = fixed.P(swatchPad, top+face.Metrics().Ascent.Ceil()+2)
	d.DrawString(msg)
}
