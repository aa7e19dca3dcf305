package atrac1

import (
	"testing"

	"github.com/mlassila/go-atrac1/internal/tables"
)

func TestSilentFrameProducesZeroBitAllocation(t *testing.T) {
	enc := NewEncoder(DefaultEncoderOptions())
	var pcm Frame

	encoded := enc.EncodeFrame(pcm)

	if tables.NBFUIndex(encoded.NBFU) < 0 {
		t.Errorf("NBFU = %d is not one of the admissible counts", encoded.NBFU)
	}
	totalBits := 0
	for i := 0; i < encoded.NBFU; i++ {
		totalBits += tables.WordLengthBits[encoded.WordLengthIndex[i]] * tables.BFUSize(i)
	}
	if totalBits != 0 {
		t.Errorf("total coefficient bits = %d, want 0 for silence", totalBits)
	}
}

func TestSilentStreamDecodesToSilence(t *testing.T) {
	enc := NewEncoder(DefaultEncoderOptions())
	dec := NewDecoder(DefaultDecoderOptions())
	var pcm Frame

	for i := 0; i < 4; i++ {
		encoded := enc.EncodeFrame(pcm)
		out := dec.DecodeFrame(encoded)
		for j, v := range out {
			if v != 0 {
				t.Fatalf("frame %d: out[%d] = %v, want 0", i, j, v)
			}
		}
	}
}

func TestEncodeProducesValidScaleFactorAndWordLengthRanges(t *testing.T) {
	enc := NewEncoder(DefaultEncoderOptions())
	var pcm Frame
	for i := range pcm {
		pcm[i] = float32(i%255)/255 - 0.5
	}
	encoded := enc.EncodeFrame(pcm)

	for i := 0; i < encoded.NBFU; i++ {
		if encoded.ScaleFactorIndex[i] > 63 {
			t.Errorf("BFU %d scaleFactorIndex = %d, want <= 63", i, encoded.ScaleFactorIndex[i])
		}
		if encoded.WordLengthIndex[i] > 15 {
			t.Errorf("BFU %d wordLengthIndex = %d, want <= 15", i, encoded.WordLengthIndex[i])
		}
	}
}

func TestEncoderRejectsInvalidOptions(t *testing.T) {
	opts := DefaultEncoderOptions()
	opts.TransientThresholdLow = 100
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("NewEncoder did not panic on out-of-range option")
		}
	}()
	NewEncoder(opts)
}

func TestEndToEndRunsWithoutPanicOnToneInput(t *testing.T) {
	enc := NewEncoder(DefaultEncoderOptions())
	dec := NewDecoder(DefaultDecoderOptions())

	for frameIdx := 0; frameIdx < 3; frameIdx++ {
		var pcm Frame
		for i := range pcm {
			n := frameIdx*512 + i
			pcm[i] = float32(sineApprox(n))
		}
		encoded := enc.EncodeFrame(pcm)
		_ = dec.DecodeFrame(encoded)
	}
}

// sineApprox avoids importing math just for a simple periodic test signal.
func sineApprox(n int) float64 {
	const period = 100
	x := float64(n%period) / period
	return x*2 - 1
}
