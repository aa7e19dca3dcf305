package tables

import "math"

// SineWindow32 is the length-32 sine window used at every short-block seam
// and at the long-block tail: w[i] = sin((i+0.5) * pi/64).
var SineWindow32 [32]float64

func init() {
	for i := range SineWindow32 {
		SineWindow32[i] = math.Sin((float64(i) + 0.5) * math.Pi / 64)
	}
}
