// Package wavio reads and writes WAV files as []float32 PCM, converting
// between WAV's integer sample formats and the core codec's 512-sample
// Frame chunking. It is an external collaborator per spec.md §1: WAV I/O
// is explicitly out of the core's scope.
package wavio

import (
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	atrac1 "github.com/mlassila/go-atrac1"
)

// Info describes a decoded WAV file's format.
type Info struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// Read decodes an entire WAV stream into per-channel float32 samples in
// [-1, 1], plus its format info. r must support seeking: the decoder
// seeks between the RIFF chunks it reads.
func Read(r io.ReadSeeker) ([][]float32, Info, error) {
	d := wav.NewDecoder(r)
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, Info{}, err
	}

	info := Info{
		SampleRate: buf.Format.SampleRate,
		Channels:   buf.Format.NumChannels,
		BitDepth:   int(d.BitDepth),
	}

	maxVal := float64(int(1)<<uint(info.BitDepth-1) - 1)
	channels := make([][]float32, info.Channels)
	n := len(buf.Data) / info.Channels
	for c := range channels {
		channels[c] = make([]float32, n)
	}
	for i, v := range buf.Data {
		c := i % info.Channels
		s := i / info.Channels
		if s < n {
			channels[c][s] = float32(float64(v) / maxVal)
		}
	}
	return channels, info, nil
}

// Write encodes per-channel float32 samples to a WAV stream at the given
// sample rate and bit depth (16 is the common default).
func Write(w io.WriteSeeker, channels [][]float32, sampleRate, bitDepth int) error {
	enc := wav.NewEncoder(w, sampleRate, bitDepth, len(channels), 1)
	maxVal := float64(int(1)<<uint(bitDepth-1) - 1)

	n := 0
	for _, ch := range channels {
		if len(ch) > n {
			n = len(ch)
		}
	}
	data := make([]int, n*len(channels))
	for s := 0; s < n; s++ {
		for c, ch := range channels {
			var v float32
			if s < len(ch) {
				v = ch[s]
			}
			data[s*len(channels)+c] = int(float64(v) * maxVal)
		}
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: len(channels), SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}

// ChunkFrames splits one channel's samples into atrac1.Frame-sized
// (512-sample) chunks, the final chunk zero-padded if short.
func ChunkFrames(samples []float32) []atrac1.Frame {
	var frames []atrac1.Frame
	for i := 0; i < len(samples); i += 512 {
		var f atrac1.Frame
		end := i + 512
		if end > len(samples) {
			end = len(samples)
		}
		copy(f[:], samples[i:end])
		frames = append(frames, f)
	}
	return frames
}
