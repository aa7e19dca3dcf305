package stream

import atrac1 "github.com/mlassila/go-atrac1"

// DelayCompensation drops the codec's CodecDelay-sample algorithmic delay
// from a decoded stream and re-chunks the remainder into 512-sample
// frames, with the final frame possibly shorter (spec.md §4.12).
type DelayCompensation struct {
	pending []float32
	dropped int
}

// NewDelayCompensation returns a DelayCompensation ready to consume the
// first decoded frame of a stream.
func NewDelayCompensation() *DelayCompensation {
	return &DelayCompensation{}
}

// Push feeds one decoded 512-sample frame in and returns zero or more
// re-chunked 512-sample frames that are now fully available (output lags
// input by CodecDelay samples).
func (d *DelayCompensation) Push(frame atrac1.Frame) []atrac1.Frame {
	samples := frame[:]
	if d.dropped < CodecDelay {
		drop := CodecDelay - d.dropped
		if drop > len(samples) {
			drop = len(samples)
		}
		samples = samples[drop:]
		d.dropped += drop
	}
	d.pending = append(d.pending, samples...)

	var out []atrac1.Frame
	for len(d.pending) >= 512 {
		var f atrac1.Frame
		copy(f[:], d.pending[:512])
		out = append(out, f)
		d.pending = d.pending[512:]
	}
	return out
}

// Flush returns any samples shorter than a full 512-sample frame left
// over at end-of-stream, as a single short frame (zero-padded to 512,
// with the returned int reporting the true sample count).
func (d *DelayCompensation) Flush() (atrac1.Frame, int) {
	var f atrac1.Frame
	n := copy(f[:], d.pending)
	d.pending = nil
	return f, n
}
