package atrac1

import (
	"github.com/charmbracelet/log"

	"github.com/mlassila/go-atrac1/internal/pipeline"
	"github.com/mlassila/go-atrac1/internal/psychoacoustic"
	"github.com/mlassila/go-atrac1/internal/qmf"
	"github.com/mlassila/go-atrac1/internal/tables"
	"github.com/mlassila/go-atrac1/internal/transient"
)

// Encoder turns a sequence of 512-sample PCM frames into EncodedFrame
// values, one per call to EncodeFrame. An Encoder owns all per-channel
// streaming state; construct one per audio channel.
type Encoder struct {
	opts EncoderOptions

	tree     *qmf.AnalysisTree
	detector *transient.Detector
	forward  *pipeline.Forward

	log *log.Logger
}

// NewEncoder constructs an Encoder with fresh, zero-initialized streaming
// state. Panics if opts fails validation; validate before calling if the
// options come from untrusted input.
func NewEncoder(opts EncoderOptions) *Encoder {
	if err := opts.Validate(); err != nil {
		panic(err)
	}
	return &Encoder{
		opts: opts,
		tree: qmf.NewAnalysisTree(),
		detector: transient.NewDetector(transient.Thresholds{
			Low:  opts.TransientThresholdLow,
			Mid:  opts.TransientThresholdMid,
			High: opts.TransientThresholdHigh,
		}),
		forward: pipeline.NewForward(),
		log:     log.NewWithOptions(nil, log.Options{ReportTimestamp: false, Prefix: "atrac1.encoder"}),
	}
}

// EncodeFrame consumes one 512-sample PCM frame and returns the
// corresponding EncodedFrame. Must be called in strict frame order;
// state from frame N carries into frame N+1 (spec.md §5).
func (e *Encoder) EncodeFrame(pcm Frame) EncodedFrame {
	samples := pcm[:]
	low, mid, high := e.tree.Split(samples)

	modes := [tables.NumBands]bool{
		e.detector.Analyze(low, tables.BandLow),
		e.detector.Analyze(mid, tables.BandMid),
		e.detector.Analyze(high, tables.BandHigh),
	}

	spectrum := e.forward.ProcessFrame(low, mid, high, modes)

	thresholds := psychoacoustic.Analyze(powerSpectrum(spectrum), 44100)
	result := e.opts.AllocationStrategy.Allocate(spectrum[:], thresholds)

	out := EncodedFrame{NBFU: result.NBfu}
	for i, short := range modes {
		if short {
			out.BlockModes[i] = Short
		} else {
			out.BlockModes[i] = Long
		}
	}
	quantizeInto(&out, spectrum[:], result)

	if modes[0] || modes[1] || modes[2] {
		e.log.Debug("short block selected", "low", modes[0], "mid", modes[1], "high", modes[2])
	}
	return out
}

// powerSpectrum converts a coefficient spectrum to per-bin power
// (|X[k]|^2) for the psychoacoustic model, which operates on power, not
// amplitude.
func powerSpectrum(spectrum [512]float32) []float32 {
	out := make([]float32, len(spectrum))
	for i, v := range spectrum {
		out[i] = v * v
	}
	return out
}
