package render

import (
	"image"
	"image/color"
	"math"
)

// Disc returns an anti-aliased alpha mask of a filled circle of radius r
// centred on (cx, cy) within bounds. Edge pixels get partial coverage based
// on their centre's distance to the rim.
func Disc(bounds image.Rectangle, cx, cy, r float64) *image.Alpha {
	mask := image.NewAlpha(bounds)
	if r <= 0 {
		return mask
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		dy := float64(y) + 0.5 - cy
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			cov := r - math.Hypot(dx, dy) + 0.5
			switch {
			case cov >= 1:
				mask.SetAlpha(x, y, color.Alpha{A: 0xff})
			case cov > 0:
				mask.SetAlpha(x, y, color.Alpha{A: uint8(cov*255 + 0.5)})
			}
		}
	}
	return mask
}
