// Package atrac1 implements an ATRAC1-compatible perceptual audio codec:
// a frame-synchronous encoder/decoder pair that transforms 44.1 kHz PCM
// into fixed-size 212-byte sound units and back.
//
// # Basic usage
//
// To encode a stream of 512-sample PCM frames into sound units:
//
//	enc := atrac1.NewEncoder(atrac1.DefaultEncoderOptions())
//	for _, frame := range frames {
//	    encoded := enc.EncodeFrame(frame)
//	    unit := serialize.SerializeFrame(&encoded)
//	    // write unit ([212]byte) to the container...
//	}
//
// Decoding mirrors this: deserialize each sound unit, then call
// Decoder.DecodeFrame.
//
// # Scope
//
// The core package handles the signal-processing and coding pipeline:
// QMF subband analysis/synthesis, MDCT with transient-driven block-mode
// selection, psychoacoustic masking, rate-distortion bit allocation,
// scalar quantization, and bit-exact frame serialization. WAV I/O, AEA
// file framing, and CLI plumbing live in sibling packages (wavio,
// container, stream, cmd/atrac1) that consume this package's API.
//
// # Concurrency
//
// Encoder and Decoder instances are NOT safe for concurrent use; each
// carries per-channel streaming state (QMF delay lines, MDCT overlap
// tails, transient-detector history) that must see frames in order.
// Independent channels (e.g. stereo L/R) should each own their own
// instance and may run on separate goroutines.
package atrac1
