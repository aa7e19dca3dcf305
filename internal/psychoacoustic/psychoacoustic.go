// Package psychoacoustic implements the masking-threshold model that
// feeds bit allocation (spec.md §4.8). It is advisory: allocation can run
// without it (falling back to Strategy B), but Strategy A depends on its
// output.
package psychoacoustic

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/mlassila/go-atrac1/internal/tables"
)

// TargetLevelDB is the default normalization target for the resampled PSD
// (spec.md §4.8 step 1).
const TargetLevelDB = 68.0

// psdLen is the PSD resolution used for masker detection; the 512-wide
// spectrum is resampled onto this many linearly spaced bins.
const psdLen = 257

// resampleIndex/resampleWeight implement the "precomputed index/weight
// table" of spec.md §4.8 step 1 as a linear interpolation from a 512-wide
// power spectrum onto psdLen bins, computed once at package init rather
// than hand-tabulated, since the mapping is a pure function of the two
// fixed lengths.
var resampleIndex [psdLen]int
var resampleWeight [psdLen]float64

func init() {
	const srcLen = 512
	for i := 0; i < psdLen; i++ {
		pos := float64(i) * float64(srcLen-1) / float64(psdLen-1)
		lo := int(pos)
		if lo >= srcLen-1 {
			lo = srcLen - 2
		}
		resampleIndex[i] = lo
		resampleWeight[i] = pos - float64(lo)
	}
}

// masker is a single detected tonal or non-tonal masker.
type masker struct {
	tonal bool
	bin   int     // psdLen-domain bin index
	freq  float64 // Hz
	dBSPL float64
}

// Analyze runs the full masking-threshold pipeline over one frame's
// 512-wide MDCT power spectrum (spec.md §4.8 steps 1-6) and returns 25
// critical-band threshold values in dB.
func Analyze(powerSpectrum []float32, sampleRate float64) [tables.NumCriticalBands]float64 {
	psd := resamplePSD(powerSpectrum)
	maskers := append(detectTonal(psd, sampleRate), detectNonTonal(psd, sampleRate)...)
	maskers = decimate(maskers)
	return combineThresholds(maskers)
}

// resamplePSD maps the 512-wide power spectrum onto psdLen bins and
// converts to dB, normalized so the peak sits at TargetLevelDB.
func resamplePSD(power []float32) []float64 {
	psd := make([]float64, psdLen)
	for i := 0; i < psdLen; i++ {
		lo := resampleIndex[i]
		w := resampleWeight[i]
		a := float64(power[lo])
		b := float64(power[lo+1])
		psd[i] = a*(1-w) + b*w
	}

	maxP := 0.0
	for _, p := range psd {
		if p > maxP {
			maxP = p
		}
	}
	if maxP <= 0 {
		// All-zero input: spec.md §4.8 failure mode handled by caller via
		// the absolute-threshold floor in combineThresholds.
		for i := range psd {
			psd[i] = -300
		}
		return psd
	}
	scale := TargetLevelDB - 10*math.Log10(maxP)
	for i, p := range psd {
		db := -300.0
		if p > 0 {
			db = 10*math.Log10(p) + scale
		}
		psd[i] = db
	}
	return psd
}

func binFreq(bin int, sampleRate float64) float64 {
	return float64(bin) * sampleRate / 2 / float64(psdLen-1)
}

// detectTonal finds local maxima exceeding their neighbors by >=7dB, with
// neighbor offsets that widen at higher frequencies (spec.md §4.8 step 2).
func detectTonal(psd []float64, sampleRate float64) []masker {
	var out []masker
	for k := 2; k < len(psd)-6; k++ {
		f := binFreq(k, sampleRate)
		var offsets []int
		switch {
		case f < 1000:
			offsets = []int{2}
		case f < 6000:
			offsets = []int{2, 3}
		default:
			offsets = []int{2, 3, 4, 5, 6}
		}
		if !isLocalPeak(psd, k, offsets) {
			continue
		}
		out = append(out, masker{
			tonal: true,
			bin:   k,
			freq:  f,
			dBSPL: psd[k],
		})
	}
	return out
}

func isLocalPeak(psd []float64, k int, offsets []int) bool {
	if k-1 < 0 || k+1 >= len(psd) {
		return false
	}
	if psd[k] < psd[k-1] || psd[k] < psd[k+1] {
		return false
	}
	for _, off := range offsets {
		if k-off >= 0 && psd[k]-psd[k-off] < 7 {
			return false
		}
		if k+off < len(psd) && psd[k]-psd[k+off] < 7 {
			return false
		}
	}
	return true
}

// detectNonTonal places one masker per critical band at the energy
// centroid of power not already claimed by a tonal masker (spec.md §4.8
// step 3).
func detectNonTonal(psd []float64, sampleRate float64) []masker {
	claimed := make([]bool, len(psd))
	for k := range psd {
		f := binFreq(k, sampleRate)
		var offsets []int
		switch {
		case f < 1000:
			offsets = []int{2}
		case f < 6000:
			offsets = []int{2, 3}
		default:
			offsets = []int{2, 3, 4, 5, 6}
		}
		if isLocalPeak(psd, k, offsets) {
			claimed[k] = true
			for _, off := range offsets {
				if k-off >= 0 {
					claimed[k-off] = true
				}
				if k+off < len(psd) {
					claimed[k+off] = true
				}
			}
		}
	}

	var out []masker
	for b := 0; b < tables.NumCriticalBands; b++ {
		lo, hi := bandBinRange(b, sampleRate, len(psd))
		var bins, weights []float64
		var power float64
		for k := lo; k < hi; k++ {
			if claimed[k] {
				continue
			}
			p := math.Pow(10, psd[k]/10)
			power += p
			bins = append(bins, float64(k))
			weights = append(weights, p)
		}
		if power <= 0 || len(bins) == 0 {
			continue
		}
		centroidBin := int(stat.Mean(bins, weights))
		out = append(out, masker{
			tonal: false,
			bin:   centroidBin,
			freq:  binFreq(centroidBin, sampleRate),
			dBSPL: 10 * math.Log10(power),
		})
	}
	return out
}

func bandBinRange(band int, sampleRate float64, nbins int) (int, int) {
	loFreq := tables.BarkBandEdges[band]
	hiFreq := tables.BarkBandEdges[band+1]
	nyquist := sampleRate / 2
	lo := int(loFreq / nyquist * float64(nbins-1))
	hi := int(hiFreq/nyquist*float64(nbins-1)) + 1
	if hi > nbins {
		hi = nbins
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi
}

// decimate drops maskers below the absolute threshold of hearing (spec.md
// §4.8 step 4).
func decimate(maskers []masker) []masker {
	var out []masker
	for _, m := range maskers {
		band := tables.BandForFrequency(m.freq)
		if m.dBSPL >= tables.AbsoluteThreshold[band] {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].freq < out[j].freq })
	return out
}

// combineThresholds computes the critical-band masking threshold by
// summing per-masker contributions via the Bark spreading function, then
// combines with the absolute threshold (spec.md §4.8 steps 5-6).
func combineThresholds(maskers []masker) [tables.NumCriticalBands]float64 {
	var thresholds [tables.NumCriticalBands]float64
	for b := 0; b < tables.NumCriticalBands; b++ {
		zMasked := tables.BarkZ((tables.BarkBandEdges[b] + tables.BarkBandEdges[b+1]) / 2)
		var sumPower float64
		for _, m := range maskers {
			zMasker := tables.BarkZ(m.freq)
			dz := zMasked - zMasker
			if dz < -3 || dz >= 8 {
				continue
			}
			sumPower += math.Pow(10, spreadingDB(m, dz)/10)
		}
		combined := tables.AbsoluteThreshold[b]
		if sumPower > 0 {
			maskDB := 10 * math.Log10(sumPower)
			combined = 10 * math.Log10(math.Pow(10, tables.AbsoluteThreshold[b]/10)+math.Pow(10, maskDB/10))
		}
		thresholds[b] = combined
	}
	return thresholds
}

// spreadingDB evaluates the piecewise-linear spreading function at Bark
// distance dz from masker m, in dB relative to the masker's own level.
func spreadingDB(m masker, dz float64) float64 {
	avTM := -1.525 - 0.275*m.freq/1000 - 4.5
	if !m.tonal {
		avTM = -1.525 - 0.175*m.freq/1000 - 0.5
	}

	var spread float64
	switch {
	case dz < -1:
		spread = 17*(dz+1) - (0.4*m.dBSPL + 6)
	case dz < 0:
		spread = (0.4*m.dBSPL + 6) * dz
	case dz < 1:
		spread = -17 * dz
	default:
		spread = (0.15*m.dBSPL - 17) * dz - 0.15*m.dBSPL
	}
	return m.dBSPL + avTM + spread
}
