package frame

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"
	"unicode"

	"github.com/example/framemaker/internal/render"
	"github.com/srwiley/rasterx"
	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// arcStepDegrees is the angular length of each segment of the ribbon path.
const arcStepDegrees = 1.0

var errNilTarget = errors.New("compose: nil destination")

// Render draws st into a new Size x Size image.
func Render(st State, l Layout) (*image.RGBA, error) {
	if l.Size <= 0 {
		l.Size = ReferenceSize
	}
	canvas := image.NewRGBA(image.Rect(0, 0, l.Size, l.Size))
	paint(canvas, st, l)
	return canvas, nil
}

// Compose draws st into dst with the frame's top-left corner at
// dst.Bounds().Min. It owns no state: the same inputs give the same pixels.
// dst must be non-nil; nil pointers of the image package types are rejected.
func Compose(dst draw.Image, st State, l Layout) error {
	if isNilImage(dst) {
		return errNilTarget
	}
	img, err := Render(st, l)
	if err != nil {
		return err
	}
	b := dst.Bounds()
	draw.Draw(dst, image.Rectangle{Min: b.Min, Max: b.Min.Add(img.Bounds().Size())}, img, image.Point{}, draw.Src)
	return nil
}

func isNilImage(dst draw.Image) bool {
	switch d := dst.(type) {
	case nil:
		return true
	case *image.RGBA:
		return d == nil
	case *image.NRGBA:
		return d == nil
	case *image.RGBA64:
		return d == nil
	case *image.NRGBA64:
		return d == nil
	case *image.Gray:
		return d == nil
	case *image.Gray16:
		return d == nil
	case *image.Alpha:
		return d == nil
	case *image.Paletted:
		return d == nil
	}
	return false
}

func paint(canvas *image.RGBA, st State, l Layout) {
	log := l.logger()
	size := float64(l.Size)
	c := size / 2

	if l.Background != nil {
		draw.Draw(canvas, canvas.Bounds(), image.NewUniform(l.Background), image.Point{}, draw.Src)
	}

	disc := render.Disc(canvas.Bounds(), c, c, c)
	if st.Image != nil {
		b := st.Image.Bounds()
		rect := FitImage(b.Dx(), b.Dy(), size, st.Zoom, st.PanX, st.PanY)
		if rect.Empty() {
			log.Debug("photo skipped", zap.Float64("zoom", st.Zoom), zap.Int("width", b.Dx()), zap.Int("height", b.Dy()))
		} else {
			drawPhoto(canvas, st.Image, rect, disc)
		}
	} else {
		drawPlaceholder(canvas, disc, l)
	}

	metrics := l.Metrics
	var face font.Face
	if f, err := NewFace(l.TextSize(), true); err != nil {
		log.Warn("ribbon font unavailable", zap.Error(err))
	} else {
		face = f
		defer face.Close()
		if metrics == nil {
			metrics = FaceMetrics{Face: face}
		}
	}
	if metrics == nil {
		metrics = FixedMetrics(l.TextSize() * 0.6)
	}

	msg := DisplayOrder(st.Message)
	radius := l.Radius()
	span := ComputeSpan(msg, metrics, radius, l.Spacing(), l.SpanStart, l.SpanEnd, l.Padding)

	if len(st.RibbonColors) == 0 {
		log.Debug("ribbon skipped: no colors")
	} else {
		stops := BuildStops(st.RibbonColors, l.FadeFraction).Scale(span.Ratio())
		strokeArc(canvas, span, c, radius, l.StrokeWeight(), ConicPaint(stops, span.Start, c, c))
	}

	places := PlaceCharacters(msg, span, metrics, radius, l.Spacing())
	if len(places) == 0 || face == nil {
		return
	}
	nudge := -l.TextSize() * l.TextNudge
	if !l.TextShadow.Enabled() {
		drawGlyphs(canvas, places, face, st.TextColor, c, nudge)
		return
	}
	layer := image.NewRGBA(canvas.Bounds())
	drawGlyphs(layer, places, face, st.TextColor, c, nudge)
	shadowed := render.DropShadow(layer, l.TextShadow.Scaled(l.Size, ReferenceSize))
	draw.Draw(canvas, canvas.Bounds(), shadowed, image.Point{}, draw.Over)
}

// drawPhoto maps img onto rect through the disc mask.
func drawPhoto(dst *image.RGBA, img image.Image, rect DrawRect, disc image.Image) {
	b := img.Bounds()
	sx := rect.Width / float64(b.Dx())
	sy := rect.Height / float64(b.Dy())
	x0, y0 := rect.Min()
	s2d := f64.Aff3{
		sx, 0, x0 - sx*float64(b.Min.X),
		0, sy, y0 - sy*float64(b.Min.Y),
	}
	xdraw.BiLinear.Transform(dst, s2d, img, b, xdraw.Over, &xdraw.Options{DstMask: disc})
}

// strokeArc strokes the ribbon along span with round caps, coloured by fill.
func strokeArc(dst *image.RGBA, span Span, c, radius, weight float64, fill rasterx.ColorFunc) {
	if weight <= 0 || radius <= 0 {
		return
	}
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	stroker := rasterx.NewStroker(w, h, scanner)
	stroker.SetStroke(fixed.Int26_6(weight*64), 4<<6, rasterx.RoundCap, nil, rasterx.RoundGap, rasterx.Round)
	stroker.SetColor(fill)

	steps := int(math.Ceil(span.Width() / arcStepDegrees))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		theta := radians(span.Start + span.Width()*float64(i)/float64(steps))
		p := rasterx.ToFixedP(c+radius*math.Sin(theta), c-radius*math.Cos(theta))
		if i == 0 {
			stroker.Start(p)
			continue
		}
		stroker.Line(p)
	}
	stroker.Stop(false)
	stroker.Draw()
}

// drawGlyphs renders each placement rotated about its own centre. Glyphs are
// centred horizontally on their advance and vertically on the ascent/descent
// box, then shifted by nudge before rotation.
func drawGlyphs(dst *image.RGBA, places []Placement, face font.Face, col color.NRGBA, c, nudge float64) {
	m := face.Metrics()
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	measure := FaceMetrics{Face: face}
	const pad = 2
	src := image.NewUniform(col)
	for _, p := range places {
		if unicode.IsSpace(p.Char) {
			continue
		}
		adv := measure.Advance(p.Char)
		gw := int(math.Ceil(adv)) + 2*pad
		gh := int(math.Ceil(ascent+descent)) + 2*pad
		glyph := image.NewRGBA(image.Rect(0, 0, gw, gh))
		d := &font.Drawer{
			Dst:  glyph,
			Src:  src,
			Face: face,
			Dot:  fixed.Point26_6{X: fixed.I(pad), Y: fixed.Int26_6((pad + ascent) * 64)},
		}
		d.DrawString(string(p.Char))

		ox := pad + adv/2
		oy := pad + (ascent+descent)/2
		px, py := p.Position(c, c)
		sin, cos := math.Sincos(p.Rotation)
		v := nudge - oy
		s2d := f64.Aff3{
			cos, -sin, px - cos*ox - sin*v,
			sin, cos, py - sin*ox + cos*v,
		}
		xdraw.BiLinear.Transform(dst, s2d, glyph, glyph.Bounds(), xdraw.Over, nil)
	}
}
