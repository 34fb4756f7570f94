package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the drop shadow cast by a text layer.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
	Color   color.NRGBA
}

// DefaultShadowOptions returns a soft shadow sized for 30px ribbon text.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{
		Radius:  3,
		Offset:  image.Pt(1, 2),
		Opacity: 0.55,
		Color:   color.NRGBA{A: 0xff},
	}
}

// Enabled reports whether the options would draw anything.
func (o ShadowOptions) Enabled() bool { return o.Opacity > 0 }

// Scaled grows radius and offset for a canvas size relative to base.
func (o ShadowOptions) Scaled(size, base int) ShadowOptions {
	if base <= 0 || size == base {
		return o
	}
	f := float64(size) / float64(base)
	o.Radius = int(float64(o.Radius)*f + 0.5)
	o.Offset = image.Pt(int(float64(o.Offset.X)*f+0.5), int(float64(o.Offset.Y)*f+0.5))
	return o
}

// DropShadow returns a new image the size of layer holding a blurred, offset
// copy of layer's alpha in the shadow colour with layer composited on top.
// Shadow falling outside the layer bounds is clipped.
func DropShadow(layer *image.RGBA, opts ShadowOptions) *image.RGBA {
	if layer == nil {
		return nil
	}
	b := layer.Bounds()
	out := image.NewRGBA(b)
	if b.Empty() {
		return out
	}
	if opts.Enabled() {
		opacity := opts.Opacity
		if opacity > 1 {
			opacity = 1
		}
		radius := opts.Radius
		if radius < 0 {
			radius = 0
		}
		mask := alphaOf(layer)
		blurred := boxBlur(mask, radius)
		col := opts.Color
		col.A = uint8(float64(col.A)*opacity + 0.5)
		if col.A > 0 {
			draw.DrawMask(out, b.Add(opts.Offset), image.NewUniform(col), image.Point{}, blurred, b.Min, draw.Over)
		}
	}
	draw.Draw(out, b, layer, b.Min, draw.Over)
	return out
}

func alphaOf(img *image.RGBA) *image.Alpha {
	b := img.Bounds()
	mask := image.NewAlpha(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			mask.SetAlpha(x, y, color.Alpha{A: img.RGBAAt(x, y).A})
		}
	}
	return mask
}

// boxBlur applies a separable box filter of the given radius.
func boxBlur(src *image.Alpha, radius int) *image.Alpha {
	b := src.Bounds()
	out := image.NewAlpha(b)
	if radius <= 0 {
		copy(out.Pix, src.Pix)
		return out
	}
	w, h := b.Dx(), b.Dy()
	tmp := image.NewAlpha(b)
	line := make([]uint8, max(w, h))
	res := make([]uint8, max(w, h))
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w]
		blurLine(row, tmp.Pix[y*tmp.Stride:y*tmp.Stride+w], radius)
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			line[y] = tmp.Pix[y*tmp.Stride+x]
		}
		blurLine(line[:h], res[:h], radius)
		for y := 0; y < h; y++ {
			out.Pix[y*out.Stride+x] = res[y]
		}
	}
	return out
}

// blurLine averages each sample with its neighbours within radius using a
// running prefix sum. The window shrinks at the edges.
func blurLine(in, out []uint8, radius int) {
	n := len(in)
	prefix := make([]int, n+1)
	for i, v := range in {
		prefix[i+1] = prefix[i] + int(v)
	}
	for i := 0; i < n; i++ {
		lo := max(i-radius, 0)
		hi := min(i+radius, n-1)
		out[i] = uint8((prefix[hi+1] - prefix[lo]) / (hi - lo + 1))
	}
}
