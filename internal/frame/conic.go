package frame

import (
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
)

// ConicPaint returns a colour function that sweeps stops clockwise around
// (cx, cy), starting at startDegrees measured from twelve o'clock. Stop
// positions are fractions of a full turn.
func ConicPaint(stops Stops, startDegrees, cx, cy float64) rasterx.ColorFunc {
	return func(x, y int) color.Color {
		return stops.At(sweepFraction(float64(x)+0.5, float64(y)+0.5, cx, cy, startDegrees))
	}
}

// sweepFraction returns the clockwise turn fraction in [0,1) from
// startDegrees to the point (x, y) around (cx, cy).
func sweepFraction(x, y, cx, cy, startDegrees float64) float64 {
	theta := degrees(math.Atan2(x-cx, cy-y))
	d := math.Mod(theta-startDegrees, 360)
	if d < 0 {
		d += 360
	}
	return d / 360
}
