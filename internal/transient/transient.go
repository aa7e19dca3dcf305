// Package transient implements the per-band transient detector that
// drives long/short MDCT block-mode selection (spec.md §4.5).
package transient

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/mlassila/go-atrac1/internal/fft"
	"github.com/mlassila/go-atrac1/internal/tables"
)

// fftSize returns the analysis FFT size for a band: 128 for low/mid, 256
// for high, zero-padding the band's samples if they're shorter.
func fftSize(band tables.Band) int {
	if band == tables.BandHigh {
		return 256
	}
	return 128
}

// Thresholds holds the per-band transient-score thresholds
// (EncoderOptions.TransientThreshold{Low,Mid,High} in spec.md §4.5).
type Thresholds struct {
	Low, Mid, High float64
}

// DefaultThresholds returns the spec-default thresholds (1.0, 1.5, 2.0).
func DefaultThresholds() Thresholds {
	return Thresholds{Low: 1.0, Mid: 1.5, High: 2.0}
}

func (t Thresholds) forBand(band tables.Band) float64 {
	switch band {
	case tables.BandLow:
		return t.Low
	case tables.BandMid:
		return t.Mid
	default:
		return t.High
	}
}

// Detector tracks the previous magnitude spectrum per band and decides
// long (false) vs. short (true) block mode for the next one.
type Detector struct {
	thresholds   Thresholds
	prevSpectrum [tables.NumBands][]float64
	hasPrev      [tables.NumBands]bool
}

// NewDetector returns a Detector with no prior history; the first call to
// Analyze for any band always returns false (long block), per spec.md
// §4.5's first-frame convention.
func NewDetector(thresholds Thresholds) *Detector {
	return &Detector{thresholds: thresholds}
}

const epsilon = 1e-9

// Analyze computes the composite transient score for bandSamples and
// reports whether the band should use short blocks for this frame.
func (d *Detector) Analyze(bandSamples []float32, band tables.Band) bool {
	n := fftSize(band)
	plan, err := fft.Shared(n)
	if err != nil {
		// n is always a compile-time-known power of two; a cache miss
		// here would indicate a programming error elsewhere.
		panic(err)
	}

	re := make([]float32, n)
	im := make([]float32, n)
	copy(re, bandSamples)
	if err := plan.Forward(re, im); err != nil {
		panic(err)
	}

	mag := make([]float64, n/2+1)
	for k := range mag {
		mag[k] = math.Hypot(float64(re[k]), float64(im[k]))
	}

	idx := int(band)
	prev := d.prevSpectrum[idx]
	hadPrev := d.hasPrev[idx]
	d.prevSpectrum[idx] = mag
	d.hasPrev[idx] = true

	if !hadPrev {
		return false
	}

	score := compositeScore(prev, mag)
	return score > d.thresholds.forBand(band)
}

func compositeScore(prev, curr []float64) float64 {
	flux := spectralFlux(prev, curr)
	flatnessDelta := math.Sqrt(math.Abs(flatness(curr) - flatness(prev)))
	hfDelta := math.Abs(hfRatio(curr) - hfRatio(prev))
	energyDelta := energyChangeDB(prev, curr)
	return (flux + flatnessDelta + hfDelta + energyDelta) / 4
}

// spectralFlux is Σ max(0, |curr[k]|-|prev[k]|) normalized by the curr
// energy's square root.
func spectralFlux(prev, curr []float64) float64 {
	var rise, energy float64
	for k := range curr {
		d := curr[k] - prev[k]
		if d > 0 {
			rise += d
		}
		energy += curr[k] * curr[k]
	}
	denom := math.Sqrt(energy)
	if denom < epsilon {
		return 0
	}
	return rise / denom
}

// flatness is the geometric mean over the arithmetic mean of magnitudes
// above epsilon.
func flatness(mag []float64) float64 {
	var filtered []float64
	for _, m := range mag {
		if m > epsilon {
			filtered = append(filtered, m)
		}
	}
	if len(filtered) == 0 {
		return 0
	}
	gm := stat.GeometricMean(filtered, nil)
	am := stat.Mean(filtered, nil)
	if am == 0 {
		return 0
	}
	return gm / am
}

// hfRatio is the log-compressed ratio of upper-half energy to total
// energy.
func hfRatio(mag []float64) float64 {
	half := len(mag) / 2
	var upper, total float64
	for k, m := range mag {
		e := m * m
		total += e
		if k >= half {
			upper += e
		}
	}
	if total < epsilon {
		return 0
	}
	ratio := upper / total
	return math.Log1p(ratio)
}

// energyChangeDB is max(0, 10*log10(Ec/Ep)) clamped to 30dB and normalized
// to [0,1].
func energyChangeDB(prev, curr []float64) float64 {
	var ep, ec float64
	for _, m := range prev {
		ep += m * m
	}
	for _, m := range curr {
		ec += m * m
	}
	if ep < epsilon {
		return 0
	}
	db := 10 * math.Log10(ec/ep)
	if db < 0 {
		db = 0
	}
	if db > 30 {
		db = 30
	}
	return db / 30
}
