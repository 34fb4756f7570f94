package frame

import (
	"image"
	"math"
)

// DrawRect is where the photo lands on the canvas.
type DrawRect struct {
	CenterX, CenterY float64
	Width, Height    float64
}

// Empty reports whether nothing would be drawn.
func (r DrawRect) Empty() bool { return !(r.Width > 0 && r.Height > 0) }

// Min returns the top-left corner.
func (r DrawRect) Min() (float64, float64) {
	return r.CenterX - r.Width/2, r.CenterY - r.Height/2
}

// Bounds returns the covering integer rectangle.
func (r DrawRect) Bounds() image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	x, y := r.Min()
	return image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+r.Width)), int(math.Ceil(y+r.Height)))
}

// FitImage cover-fits an image into a square canvas. Landscape images take
// their height from the canvas, everything else its width; zoom scales both
// and pan offsets the centre. Non-positive sizes or zoom give an empty rect.
func FitImage(imageWidth, imageHeight int, canvasSize, zoom, panX, panY float64) DrawRect {
	center := canvasSize / 2
	rect := DrawRect{CenterX: center + panX, CenterY: center + panY}
	if imageWidth <= 0 || imageHeight <= 0 || canvasSize <= 0 || !(zoom > 0) {
		return rect
	}
	aspect := float64(imageWidth) / float64(imageHeight)
	if aspect > 1 {
		rect.Height = canvasSize * zoom
		rect.Width = rect.Height * aspect
	} else {
		rect.Width = canvasSize * zoom
		rect.Height = rect.Width / aspect
	}
	return rect
}

// ViewportPolicy is an optional clamp applied by interactive callers before
// state changes reach the compositor.
type ViewportPolicy struct {
	MinZoom float64
	MaxZoom float64
	// Contain keeps the photo covering the whole disc while panning.
	Contain bool
}

// DefaultViewportPolicy matches the zoom slider range of the web editor.
func DefaultViewportPolicy() ViewportPolicy {
	return ViewportPolicy{MinZoom: 1, MaxZoom: 3, Contain: true}
}

// ClampZoom limits zoom to the policy range. A zero bound is ignored.
func (p ViewportPolicy) ClampZoom(zoom float64) float64 {
	if p.MinZoom > 0 && (zoom < p.MinZoom || math.IsNaN(zoom)) {
		zoom = p.MinZoom
	}
	if p.MaxZoom > 0 && zoom > p.MaxZoom {
		zoom = p.MaxZoom
	}
	return zoom
}

// ClampPan keeps the drawn photo over the disc when Contain is set. On an
// axis where the photo is smaller than the canvas the pan is forced to zero.
func (p ViewportPolicy) ClampPan(imageWidth, imageHeight int, canvasSize, zoom, panX, panY float64) (float64, float64) {
	if !p.Contain {
		return panX, panY
	}
	r := FitImage(imageWidth, imageHeight, canvasSize, zoom, 0, 0)
	if r.Empty() {
		return 0, 0
	}
	limit := func(v, drawn float64) float64 {
		slack := (drawn - canvasSize) / 2
		if slack <= 0 {
			return 0
		}
		return clampFloat(v, -slack, slack)
	}
	return limit(panX, r.Width), limit(panY, r.Height)
}
