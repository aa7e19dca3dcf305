package alloc

import (
	"math"

	"github.com/mlassila/go-atrac1/internal/tables"
)

// LpExponent is the fixed exponent p in Strategy B's Lp-RDO weighting
// (spec.md §4.9).
const LpExponent = 2.0

// LpRDOAllocator is Strategy B from spec.md §4.9: a closed-form
// rate-distortion weighting with no psychoacoustic model, always
// spending across all 52 BFUs.
type LpRDOAllocator struct{}

var _ Allocator = LpRDOAllocator{}

// Allocate implements Allocator. thresholds is accepted for interface
// compatibility with Strategy A but unused, since Strategy B is
// explicitly psychoacoustics-free.
func (LpRDOAllocator) Allocate(spectrum []float32, _ [tables.NumCriticalBands]float64) Result {
	sf := scaleFactorIndices(spectrum)
	const nBfu = tables.NumBFU

	base := make([]float64, nBfu)
	for i := 0; i < nBfu; i++ {
		size := tables.BFUSize(i)
		base[i] = float64(size) * math.Pow(tables.ScaleFactor[sf[i]], LpExponent)
	}

	wl := make([]int, nBfu)
	budget := bitBudget(nBfu)

	h := &maxHeap{}
	for i := 0; i < nBfu; i++ {
		if sf[i] == 0 {
			continue // silent BFU: scale-factor index 0 already forces zero coefficients (spec.md §3)
		}
		h.push(candidate{bfu: i, priority: lpPriority(base[i], 0)})
	}

	for budget > 0 && h.len() > 0 {
		c, ok := h.pop()
		if !ok {
			break
		}
		next := wl[c.bfu] + 1
		if next > 15 {
			continue
		}
		bitCost := tables.WordLengthBits[next] - tables.WordLengthBits[wl[c.bfu]]
		cost := bitCost * tables.BFUSize(c.bfu)
		if cost > budget {
			continue
		}
		budget -= cost
		wl[c.bfu] = next
		if next < 15 {
			h.push(candidate{bfu: c.bfu, priority: lpPriority(base[c.bfu], next)})
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

// lpDistortion is Strategy B's closed-form distortion model: base*2^(-p*b)
// for b>=1, base*2^p (a mute penalty) at b=0.
func lpDistortion(base float64, bits int) float64 {
	if bits == 0 {
		return base * math.Pow(2, LpExponent)
	}
	return base * math.Pow(2, -LpExponent*float64(bits))
}

// lpPriority is Δdistortion/Δbits for the upgrade from wl to wl+1.
func lpPriority(base float64, wl int) float64 {
	next := wl + 1
	if next > 15 {
		return 0
	}
	curBits := tables.WordLengthBits[wl]
	nextBits := tables.WordLengthBits[next]
	deltaBits := nextBits - curBits
	if deltaBits <= 0 {
		return 0
	}
	deltaD := lpDistortion(base, curBits) - lpDistortion(base, nextBits)
	return deltaD / float64(deltaBits)
}
