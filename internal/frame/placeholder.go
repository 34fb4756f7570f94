package frame

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"

	"github.com/example/framemaker/assets"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// drawPlaceholder fills the disc and draws the camera icon above the label.
func drawPlaceholder(dst *image.RGBA, disc image.Image, l Layout) {
	log := l.logger()
	b := dst.Bounds()
	if l.PlaceholderFill != nil {
		draw.DrawMask(dst, b, image.NewUniform(l.PlaceholderFill), image.Point{}, disc, b.Min, draw.Over)
	}
	scale := float64(l.Size) / ReferenceSize
	c := float64(l.Size) / 2
	iconSize := 48 * scale
	if err := drawIcon(dst, assets.PlaceholderIcon, c-iconSize/2, c-iconSize-12*scale, iconSize); err != nil {
		log.Warn("placeholder icon", zap.Error(err))
	}
	if l.PlaceholderLabel == "" || l.PlaceholderInk == nil {
		return
	}
	face, err := NewFace(l.PlaceholderSize*scale, false)
	if err != nil {
		log.Warn("placeholder font unavailable", zap.Error(err))
		return
	}
	defer face.Close()
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(l.PlaceholderInk), Face: face}
	width := d.MeasureString(l.PlaceholderLabel)
	m := face.Metrics()
	baseline := fixed.Int26_6(c*64) + (m.Ascent-m.Descent)/2
	d.Dot = fixed.Point26_6{X: fixed.Int26_6(c*64) - width/2, Y: baseline}
	d.DrawString(l.PlaceholderLabel)
}

// drawIcon rasterises an embedded SVG icon into the square at (x, y).
func drawIcon(dst *image.RGBA, name string, x, y, size float64) error {
	data, err := assets.IconSVG(name)
	if err != nil {
		return err
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return fmt.Errorf("parse icon %s: %w", name, err)
	}
	icon.SetTarget(x, y, size, size)
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return nil
}
