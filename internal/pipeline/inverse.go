package pipeline

import (
	"github.com/mlassila/go-atrac1/internal/mdct"
	"github.com/mlassila/go-atrac1/internal/tables"
)

// Inverse holds the per-band IMDCT state a decoder carries across frames:
// the mirror of Forward's retained 32-sample tail.
type Inverse struct {
	longMDCT  [tables.NumBands]*mdct.MDCT
	shortMDCT *mdct.MDCT
	tail      [tables.NumBands][32]float32
}

// NewInverse returns an Inverse with zeroed tail state.
func NewInverse() *Inverse {
	inv := &Inverse{shortMDCT: mdct.New(64)}
	for b := tables.Band(0); b < tables.NumBands; b++ {
		inv.longMDCT[b] = mdct.New(longTransformSize(b))
	}
	return inv
}

// ProcessFrame consumes the 512-coefficient global spectrum and the
// frame's block-mode selections and returns the three reconstructed band
// signals (128, 128, 256 samples).
func (inv *Inverse) ProcessFrame(spectrum [512]float32, modes [tables.NumBands]bool) (low, mid, high []float32) {
	out := make([][]float32, tables.NumBands)
	for b := tables.Band(0); b < tables.NumBands; b++ {
		lo, hi := tables.BandRange(b)
		start := tables.StartLong(lo)
		end := tables.StartLong(hi-1) + tables.BFUSize(hi-1)
		coef := append([]float32(nil), spectrum[start:end]...)
		if reversed(b) {
			coef = reverse(coef)
		}
		out[b] = inv.processBand(b, coef, modes[b])
	}
	return out[tables.BandLow], out[tables.BandMid], out[tables.BandHigh]
}

func (inv *Inverse) processBand(band tables.Band, coef []float32, short bool) []float32 {
	if !short {
		return inv.longBlock(band, coef)
	}
	return inv.shortBlocks(band, coef)
}

func (inv *Inverse) longBlock(band tables.Band, coef []float32) []float32 {
	n := longTransformSize(band)
	raw := make([]float32, n)
	inv.longMDCT[band].Inverse(coef, raw)

	outLen := len(coef) // bandLen == n/2
	out, newTail := blendBlockOutput(&inv.tail[band], raw, outLen)
	inv.tail[band] = newTail
	return out
}

func (inv *Inverse) shortBlocks(band tables.Band, coef []float32) []float32 {
	out := make([]float32, 0, len(coef))
	for i := 0; i < len(coef); i += 32 {
		chunk := coef[i : i+32]
		raw := make([]float32, 64)
		inv.shortMDCT.Inverse(chunk, raw)

		blockOut, newTail := blendBlockOutput(&inv.tail[band], raw, 32)
		inv.tail[band] = newTail
		out = append(out, blockOut...)
	}
	return out
}

// blendBlockOutput is the decode-side mirror of buildBlockInput. raw is
// the full n-sample IMDCT output (n = 2*len(coef)); the first 32 samples
// are crossfaded against the retained tail using the window's
// power-complementary pair (w[i], w[31-i]), the next outLen-32 samples
// pass through unchanged, and the 32 samples following outLen become the
// new tail.
func blendBlockOutput(tail *[32]float32, raw []float32, outLen int) ([]float32, [32]float32) {
	out := make([]float32, outLen)
	for i := 0; i < 32; i++ {
		out[i] = tail[i]*float32(tables.SineWindow32[i]) + raw[i]*float32(tables.SineWindow32[31-i])
	}
	copy(out[32:], raw[32:outLen])

	var newTail [32]float32
	copy(newTail[:], raw[outLen:outLen+32])
	return out, newTail
}
