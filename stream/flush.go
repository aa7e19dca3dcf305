// Package stream implements the generator-style plumbing around the core
// codec: end-of-stream padding, decoder delay compensation, and
// stereo channel interleaving (spec.md §4.12).
package stream

import atrac1 "github.com/mlassila/go-atrac1"

// CodecDelay is the encoder/decoder pipeline's total algorithmic delay in
// samples (spec.md §3's "Codec algorithmic delay = 266 samples").
const CodecDelay = 266

// FlushPadding zero-pads a final partial PCM frame (fewer than 512
// samples) up to a full frame, emitting a second all-zero frame when the
// padding added is shorter than CodecDelay so the decoder has enough
// trailing silence to flush its own delay (spec.md §4.12).
func FlushPadding(tail []float32) []atrac1.Frame {
	if len(tail) == 0 {
		return nil
	}
	if len(tail) > 512 {
		panic("stream: FlushPadding tail longer than one frame")
	}

	var first atrac1.Frame
	copy(first[:], tail)
	frames := []atrac1.Frame{first}

	padding := 512 - len(tail)
	if padding < CodecDelay {
		frames = append(frames, atrac1.Frame{})
	}
	return frames
}
