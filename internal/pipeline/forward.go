package pipeline

import (
	"github.com/mlassila/go-atrac1/internal/mdct"
	"github.com/mlassila/go-atrac1/internal/tables"
)

// Forward holds the per-band MDCT state an encoder carries across frames:
// the 32-sample windowed tail left over from each band's previous block.
type Forward struct {
	longMDCT  [tables.NumBands]*mdct.MDCT
	shortMDCT *mdct.MDCT
	tail      [tables.NumBands][32]float32
}

// NewForward returns a Forward with zeroed tail state, as required at
// stream start (spec.md's "Ownership and lifecycle": buffers are
// zero-initialized at construction).
func NewForward() *Forward {
	f := &Forward{shortMDCT: mdct.New(64)}
	for b := tables.Band(0); b < tables.NumBands; b++ {
		f.longMDCT[b] = mdct.New(longTransformSize(b))
	}
	return f
}

// ProcessFrame consumes one frame's three band signals and their
// block-mode selections and returns the 512-coefficient global spectrum.
func (f *Forward) ProcessFrame(low, mid, high []float32, modes [tables.NumBands]bool) [512]float32 {
	bands := [tables.NumBands][]float32{low, mid, high}

	var spectrum [512]float32
	for b := tables.Band(0); b < tables.NumBands; b++ {
		coef := f.processBand(b, bands[b], modes[b])
		if reversed(b) {
			coef = reverse(coef)
		}
		start := tables.StartLong(bandStartBFU(b))
		copy(spectrum[start:start+len(coef)], coef)
	}
	return spectrum
}

// bandStartBFU returns the first BFU index of a band, used only to look up
// its starting global-spectrum offset.
func bandStartBFU(b tables.Band) int {
	lo, _ := tables.BandRange(b)
	return lo
}

// processBand runs either the long-block or short-block construction for
// one band and returns bandLen coefficients in natural (unreversed) order.
func (f *Forward) processBand(band tables.Band, samples []float32, short bool) []float32 {
	if !short {
		return f.longBlock(band, samples)
	}
	return f.shortBlocks(band, samples)
}

// longBlock builds one MDCT block covering the whole band, using the
// retained tail at the seam (spec.md §4.6 "Long block").
func (f *Forward) longBlock(band tables.Band, samples []float32) []float32 {
	n := longTransformSize(band)
	input, newTail := buildBlockInput(&f.tail[band], samples, n)
	f.tail[band] = newTail

	coef := make([]float32, n/2)
	f.longMDCT[band].Forward(input, coef)
	return coef
}

// shortBlocks splits the band into K 32-sample blocks, each overlapping
// the previous block's tail through the sine window (spec.md §4.6 "Short
// blocks").
func (f *Forward) shortBlocks(band tables.Band, samples []float32) []float32 {
	k := shortBlockCount(band)
	blockLen := len(samples) / k
	out := make([]float32, 0, len(samples))
	for i := 0; i < k; i++ {
		chunk := samples[i*blockLen : (i+1)*blockLen]
		input, newTail := buildBlockInput(&f.tail[band], chunk, 64)
		f.tail[band] = newTail

		coef := make([]float32, 32)
		f.shortMDCT.Forward(input, coef)
		out = append(out, coef...)
	}
	return out
}

// buildBlockInput concatenates the retained 32-sample tail with current,
// windows the last 32 samples of current for emission (spec.md §4.6's
// "last 32 samples ... multiplied by w[31-i]"), and zero-pads the result
// to length n. It also returns the new tail: the same last-32 samples of
// current, windowed instead by w[i], to be retained for the next block at
// this band (spec.md §4.6).
func buildBlockInput(tail *[32]float32, current []float32, n int) ([]float32, [32]float32) {
	body := make([]float32, len(current)+32)
	copy(body, tail[:])
	copy(body[32:], current)

	var newTail [32]float32
	m := len(current)
	for i := 0; i < 32; i++ {
		raw := current[m-32+i]
		body[32+m-32+i] = raw * float32(tables.SineWindow32[31-i])
		newTail[i] = raw * float32(tables.SineWindow32[i])
	}

	input := make([]float32, n)
	copy(input, body)
	return input, newTail
}
