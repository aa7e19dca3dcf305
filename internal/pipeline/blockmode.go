// Package pipeline implements the forward and inverse MDCT stages that sit
// between the QMF bands and the 512-coefficient global spectrum (spec.md
// §4.6, §4.7), including long/short block construction, the 32-sample
// sine-windowed seam, and the mid/high spectral reversal.
package pipeline

import "github.com/mlassila/go-atrac1/internal/tables"

// shortBlockCount is K in spec.md §4.6: the number of 32-sample short
// blocks per band when that band is in short-block mode.
func shortBlockCount(band tables.Band) int {
	if band == tables.BandHigh {
		return 8
	}
	return 4
}

// longTransformSize is the MDCT size N used for a band's long block.
func longTransformSize(band tables.Band) int {
	if band == tables.BandHigh {
		return 512
	}
	return 256
}

// reverses mid/high bands before they're written into the global spectrum
// layout (spec.md §3, §4.6).
func reversed(band tables.Band) bool {
	return band == tables.BandMid || band == tables.BandHigh
}

func reverse(coef []float32) []float32 {
	out := make([]float32, len(coef))
	for i, v := range coef {
		out[len(coef)-1-i] = v
	}
	return out
}
