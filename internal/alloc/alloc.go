// Package alloc implements rate-distortion-optimized bit allocation
// across BFUs under the frame's hard bit budget (spec.md §4.9). Two
// admissible strategies are provided: Strategy A (perceptual SMR,
// strategy_a.go) and Strategy B (Lp-RDO, lp.go). This package defaults to
// Strategy A; see DESIGN.md's Open Questions entry for why.
package alloc

import "github.com/mlassila/go-atrac1/internal/tables"

// FrameBits is the hard bit budget of one 212-byte sound unit.
const FrameBits = 1696

// HeaderBits is the fixed per-frame header overhead.
const HeaderBits = 16

// PerBFUOverheadBits is the per-active-BFU metadata overhead: 4 bits of
// word-length index plus 6 bits of scale-factor index.
const PerBFUOverheadBits = 10

// Result is the allocator's output: a word-length index and scale-factor
// index per active BFU, in spectrum order.
type Result struct {
	NBfu             int
	WordLengthIndex  []int
	ScaleFactorIndex []uint8
}

// Allocator assigns word lengths and scale factors to BFUs given the full
// 512-wide unquantized MDCT spectrum and (for strategies that use it) the
// critical-band masking thresholds from internal/psychoacoustic.
type Allocator interface {
	Allocate(spectrum []float32, thresholds [tables.NumCriticalBands]float64) Result
}

// bitBudget returns the data-bit budget remaining after header and
// per-BFU metadata overhead for nBfu active BFUs.
func bitBudget(nBfu int) int {
	return FrameBits - HeaderBits - nBfu*PerBFUOverheadBits
}

// scaleFactorIndices computes the scale-factor index for every BFU (all
// tables.NumBFU of them, regardless of how many end up active) from the
// full spectrum.
func scaleFactorIndices(spectrum []float32) [tables.NumBFU]uint8 {
	var out [tables.NumBFU]uint8
	for i := 0; i < tables.NumBFU; i++ {
		start := tables.StartLong(i)
		size := tables.BFUSize(i)
		var maxAbs float64
		for _, c := range spectrum[start : start+size] {
			a := float64(c)
			if a < 0 {
				a = -a
			}
			if a > maxAbs {
				maxAbs = a
			}
		}
		out[i] = tables.ScaleFactorIndexFor(maxAbs)
	}
	return out
}

// selfCheck verifies the allocator never returns a configuration that
// exceeds the frame's bit budget; spec.md §4.9 requires this check be
// mandatory, not advisory.
func selfCheck(r Result) {
	used := HeaderBits + r.NBfu*PerBFUOverheadBits
	for i := 0; i < r.NBfu; i++ {
		used += tables.WordLengthBits[r.WordLengthIndex[i]] * tables.BFUSize(i)
	}
	if used > FrameBits {
		panic("alloc: allocator produced a configuration exceeding FrameBits")
	}
}
