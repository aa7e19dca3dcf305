package alloc

import (
	"math"

	"github.com/mlassila/go-atrac1/internal/tables"
)

// distortion estimates per-sample quantization noise variance at
// word-length index wl, normalized to 1 at wl=0 (a muted BFU, treated as
// maximal distortion). For wl>0 distortion falls off as 2^-2b with the
// word length's bit count b, the standard uniform-quantizer noise model.
func distortion(wl int) float64 {
	bits := tables.WordLengthBits[wl]
	if bits == 0 {
		return 1
	}
	return math.Pow(2, -2*float64(bits))
}

// deltaDistortion is the reduction in distortion from upgrading to wl
// from wl-1, the table-precomputed quantity spec.md §4.9 adds to a
// candidate's heap priority after each accepted upgrade.
func deltaDistortion(wl int) float64 {
	if wl <= 0 {
		return 0
	}
	return distortion(wl-1) - distortion(wl)
}
