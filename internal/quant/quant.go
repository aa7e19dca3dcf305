// Package quant implements scalar quantization and dequantization of BFU
// coefficients against the 64-entry scale-factor table (spec.md §4.10).
package quant

import (
	"math"

	"github.com/mlassila/go-atrac1/internal/tables"
)

// ScaleFactorIndexFor returns the smallest scale-factor index i with
// ScaleFactor[i] >= maxAbs, or 0 if maxAbs is 0.
func ScaleFactorIndexFor(maxAbs float64) uint8 {
	return tables.ScaleFactorIndexFor(maxAbs)
}

// qRange returns 2^(bits-1) - 1 for the given word-length bit count.
func qRange(bits int) int {
	return (1 << uint(bits-1)) - 1
}

// Quantize encodes coef against scale-factor index sfIndex at word length
// index wl, returning signed integers clipped to [-qRange-1, qRange]. If
// wl is 0 or sfIndex is 0, all outputs are zero per spec.md §4.10.
func Quantize(coef []float32, sfIndex uint8, wl int) []int32 {
	out := make([]int32, len(coef))
	bits := tables.WordLengthBits[wl]
	if bits == 0 || sfIndex == 0 {
		return out
	}
	sf := tables.ScaleFactor[sfIndex]
	r := qRange(bits)
	for i, c := range coef {
		q := math.Round(float64(c) * float64(r) / sf)
		if q > float64(r) {
			q = float64(r)
		}
		if q < float64(-r-1) {
			q = float64(-r - 1)
		}
		out[i] = int32(q)
	}
	return out
}

// Dequantize reverses Quantize: c = q * SF[sfIndex] / qRange.
func Dequantize(q []int32, sfIndex uint8, wl int) []float32 {
	out := make([]float32, len(q))
	bits := tables.WordLengthBits[wl]
	if bits == 0 || sfIndex == 0 {
		return out
	}
	sf := tables.ScaleFactor[sfIndex]
	r := qRange(bits)
	for i, v := range q {
		out[i] = float32(float64(v) * sf / float64(r))
	}
	return out
}
