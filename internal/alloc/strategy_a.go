package alloc

import (
	"math"

	"github.com/mlassila/go-atrac1/internal/tables"
)

// PerceptualAllocator is Strategy A from spec.md §4.9: psychoacoustic
// thresholds feed a per-BFU signal-to-masking ratio, an adaptive BFU
// count is chosen by a diminishing-returns rule, and a greedy max-heap
// allocator spends the remaining bit budget on the BFUs with the largest
// marginal benefit.
type PerceptualAllocator struct{}

var _ Allocator = PerceptualAllocator{}

// Allocate implements Allocator.
func (PerceptualAllocator) Allocate(spectrum []float32, thresholds [tables.NumCriticalBands]float64) Result {
	sf := scaleFactorIndices(spectrum)
	smr := perBFUSMR(spectrum, thresholds)
	nBfu := selectNBfu(smr)

	wl := make([]int, nBfu)
	budget := bitBudget(nBfu)

	h := &maxHeap{}
	for i := 0; i < nBfu; i++ {
		if sf[i] == 0 {
			continue // silent BFU: scale-factor index 0 already forces zero coefficients (spec.md §3)
		}
		h.push(candidate{bfu: i, priority: smr[i]})
	}

	for budget > 0 && h.len() > 0 {
		c, ok := h.pop()
		if !ok {
			break
		}
		next := wl[c.bfu] + 1
		if next > 15 {
			continue // fully allocated, no further upgrade possible
		}
		cost := (tables.WordLengthBits[next] - tables.WordLengthBits[wl[c.bfu]]) * tables.BFUSize(c.bfu)
		if cost > budget {
			continue // spec.md §4.9: "otherwise discard"
		}
		budget -= cost
		wl[c.bfu] = next
		if next < 15 {
			h.push(candidate{bfu: c.bfu, priority: c.priority + deltaDistortion(next)})
		}
	}

	result := Result{
		NBfu:             nBfu,
		WordLengthIndex:  wl,
		ScaleFactorIndex: sf[:nBfu],
	}
	selfCheck(result)
	return result
}

// perBFUSMR computes signal-to-masking ratio (energy in dB minus the
// interpolated masking threshold) for every one of the 52 BFUs.
func perBFUSMR(spectrum []float32, thresholds [tables.NumCriticalBands]float64) [tables.NumBFU]float64 {
	var smr [tables.NumBFU]float64
	for i := 0; i < tables.NumBFU; i++ {
		start := tables.StartLong(i)
		size := tables.BFUSize(i)
		var energy float64
		for _, c := range spectrum[start : start+size] {
			energy += float64(c) * float64(c)
		}
		energyDB := -300.0
		if energy > 0 {
			energyDB = 10 * math.Log10(energy)
		}
		center := binFreq(start+size/2, len(spectrum))
		thresholdDB := interpolateThreshold(thresholds, center)
		smr[i] = energyDB - thresholdDB
	}
	return smr
}

func binFreq(bin, spectrumLen int) float64 {
	const nyquist = 22050.0
	return float64(bin) / float64(spectrumLen) * nyquist
}

// interpolateThreshold linearly interpolates the 25 critical-band
// thresholds onto an arbitrary frequency.
func interpolateThreshold(thresholds [tables.NumCriticalBands]float64, freq float64) float64 {
	centers := make([]float64, tables.NumCriticalBands)
	for b := range centers {
		centers[b] = (tables.BarkBandEdges[b] + tables.BarkBandEdges[b+1]) / 2
	}
	if freq <= centers[0] {
		return thresholds[0]
	}
	if freq >= centers[len(centers)-1] {
		return thresholds[len(centers)-1]
	}
	for b := 0; b < len(centers)-1; b++ {
		if freq >= centers[b] && freq <= centers[b+1] {
			w := (freq - centers[b]) / (centers[b+1] - centers[b])
			return thresholds[b]*(1-w) + thresholds[b+1]*w
		}
	}
	return thresholds[len(centers)-1]
}

// selectNBfu picks the smallest active-BFU count n from
// tables.NBFUOptions such that the average SMR of the excluded BFUs
// (those beyond n) is under 10% of the average SMR of the included ones,
// per spec.md §4.9's diminishing-returns rule. Falls back to the full 52
// if no smaller option satisfies the rule.
func selectNBfu(smr [tables.NumBFU]float64) int {
	for _, n := range tables.NBFUOptions {
		if n >= tables.NumBFU {
			return tables.NumBFU
		}
		includedAvg := average(smr[:n])
		excludedAvg := average(smr[n:])
		if includedAvg <= 0 {
			continue
		}
		if excludedAvg < 0.1*includedAvg {
			return n
		}
	}
	return tables.NumBFU
}

func average(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
