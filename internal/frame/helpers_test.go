package frame

import "math"

func sinDeg(d float64) float64 { return math.Sin(radians(d)) }

func cosDeg(d float64) float64 { return math.Cos(radians(d)) }
