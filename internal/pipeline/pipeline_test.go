package pipeline

import (
	"testing"

	"github.com/mlassila/go-atrac1/internal/tables"
)

func TestForwardProducesFullSpectrumFromLongBlocks(t *testing.T) {
	f := NewForward()
	low := make([]float32, 128)
	mid := make([]float32, 128)
	high := make([]float32, 256)
	spectrum := f.ProcessFrame(low, mid, high, [tables.NumBands]bool{false, false, false})
	if len(spectrum) != 512 {
		t.Fatalf("spectrum length = %d, want 512", len(spectrum))
	}
}

func TestForwardProducesFullSpectrumFromShortBlocks(t *testing.T) {
	f := NewForward()
	low := make([]float32, 128)
	mid := make([]float32, 128)
	high := make([]float32, 256)
	spectrum := f.ProcessFrame(low, mid, high, [tables.NumBands]bool{true, true, true})
	if len(spectrum) != 512 {
		t.Fatalf("spectrum length = %d, want 512", len(spectrum))
	}
}

func TestSilenceRoundTripsToSilence(t *testing.T) {
	f := NewForward()
	inv := NewInverse()

	low := make([]float32, 128)
	mid := make([]float32, 128)
	high := make([]float32, 256)
	modes := [tables.NumBands]bool{false, false, false}

	for frame := 0; frame < 3; frame++ {
		spectrum := f.ProcessFrame(low, mid, high, modes)
		outLow, outMid, outHigh := inv.ProcessFrame(spectrum, modes)
		for i, v := range outLow {
			if v != 0 {
				t.Fatalf("frame %d: outLow[%d] = %v, want 0 on silent input", frame, i, v)
			}
		}
		for i, v := range outMid {
			if v != 0 {
				t.Fatalf("frame %d: outMid[%d] = %v, want 0 on silent input", frame, i, v)
			}
		}
		for i, v := range outHigh {
			if v != 0 {
				t.Fatalf("frame %d: outHigh[%d] = %v, want 0 on silent input", frame, i, v)
			}
		}
	}
}

func TestInverseBandShapesMatchQMFExpectations(t *testing.T) {
	f := NewForward()
	inv := NewInverse()
	low := make([]float32, 128)
	mid := make([]float32, 128)
	high := make([]float32, 256)
	modes := [tables.NumBands]bool{false, true, false}

	spectrum := f.ProcessFrame(low, mid, high, modes)
	outLow, outMid, outHigh := inv.ProcessFrame(spectrum, modes)

	if len(outLow) != 128 {
		t.Errorf("len(outLow) = %d, want 128", len(outLow))
	}
	if len(outMid) != 128 {
		t.Errorf("len(outMid) = %d, want 128", len(outMid))
	}
	if len(outHigh) != 256 {
		t.Errorf("len(outHigh) = %d, want 256", len(outHigh))
	}
}

func TestMixedBlockModesAcrossBands(t *testing.T) {
	f := NewForward()
	low := make([]float32, 128)
	mid := make([]float32, 128)
	high := make([]float32, 256)
	for i := range high {
		high[i] = float32(i%5) * 0.01
	}
	spectrum := f.ProcessFrame(low, mid, high, [tables.NumBands]bool{false, true, true})
	if len(spectrum) != 512 {
		t.Fatalf("spectrum length = %d, want 512", len(spectrum))
	}
}
