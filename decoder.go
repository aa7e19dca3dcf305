package atrac1

import (
	"github.com/mlassila/go-atrac1/internal/pipeline"
	"github.com/mlassila/go-atrac1/internal/qmf"
	"github.com/mlassila/go-atrac1/internal/tables"
)

// Decoder turns EncodedFrame values back into 512-sample PCM frames. A
// Decoder owns all per-channel streaming state; construct one per audio
// channel.
type Decoder struct {
	opts DecoderOptions

	tree    *qmf.SynthesisTree
	inverse *pipeline.Inverse
}

// NewDecoder constructs a Decoder with fresh, zero-initialized streaming
// state.
func NewDecoder(opts DecoderOptions) *Decoder {
	return &Decoder{
		opts:    opts,
		tree:    qmf.NewSynthesisTree(),
		inverse: pipeline.NewInverse(),
	}
}

// DecodeFrame reconstructs one 512-sample PCM frame from an EncodedFrame.
// Tolerates NBFU == 0 (silence) and any WordLengthIndex == 0 BFU (spec.md
// §6) by treating the corresponding coefficients as zero. Must be called
// in strict frame order.
func (d *Decoder) DecodeFrame(f EncodedFrame) Frame {
	spectrum := dequantizeSpectrum(&f)

	modes := [tables.NumBands]bool{
		f.BlockModes[tables.BandLow] == Short,
		f.BlockModes[tables.BandMid] == Short,
		f.BlockModes[tables.BandHigh] == Short,
	}

	low, mid, high := d.inverse.ProcessFrame(spectrum, modes)
	out := d.tree.Combine(low, mid, high)

	var frame Frame
	copy(frame[:], out)
	return frame
}
