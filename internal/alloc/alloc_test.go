package alloc

import (
	"testing"

	"github.com/mlassila/go-atrac1/internal/tables"
)

func quietThresholds() [tables.NumCriticalBands]float64 {
	var t [tables.NumCriticalBands]float64
	copy(t[:], tables.AbsoluteThreshold[:])
	return t
}

func TestPerceptualAllocatorStaysWithinBudget(t *testing.T) {
	spectrum := make([]float32, 512)
	for i := range spectrum {
		spectrum[i] = float32(i%37) * 0.01
	}
	result := PerceptualAllocator{}.Allocate(spectrum, quietThresholds())

	used := HeaderBits + result.NBfu*PerBFUOverheadBits
	for i := 0; i < result.NBfu; i++ {
		used += tables.WordLengthBits[result.WordLengthIndex[i]] * tables.BFUSize(i)
	}
	if used > FrameBits {
		t.Errorf("used %d bits, exceeds FrameBits %d", used, FrameBits)
	}
	if tables.NBFUIndex(result.NBfu) < 0 {
		t.Errorf("NBfu = %d is not one of tables.NBFUOptions", result.NBfu)
	}
}

func TestLpRDOAllocatorStaysWithinBudget(t *testing.T) {
	spectrum := make([]float32, 512)
	for i := range spectrum {
		spectrum[i] = float32(i%29) * 0.02
	}
	result := LpRDOAllocator{}.Allocate(spectrum, quietThresholds())

	if result.NBfu != tables.NumBFU {
		t.Errorf("Strategy B NBfu = %d, want %d (always all BFUs)", result.NBfu, tables.NumBFU)
	}
	used := HeaderBits + result.NBfu*PerBFUOverheadBits
	for i := 0; i < result.NBfu; i++ {
		used += tables.WordLengthBits[result.WordLengthIndex[i]] * tables.BFUSize(i)
	}
	if used > FrameBits {
		t.Errorf("used %d bits, exceeds FrameBits %d", used, FrameBits)
	}
}

func TestAllZeroSpectrumProducesAllZeroAllocation(t *testing.T) {
	spectrum := make([]float32, 512)
	result := PerceptualAllocator{}.Allocate(spectrum, quietThresholds())
	for i, wl := range result.WordLengthIndex {
		if wl != 0 {
			t.Errorf("BFU %d got wl=%d on silent input, want 0", i, wl)
		}
	}
}

func TestLouderSpectrumGetsNoFewerBitsThanQuieter(t *testing.T) {
	loud := make([]float32, 512)
	quiet := make([]float32, 512)
	for i := range loud {
		loud[i] = 1.0
		quiet[i] = 0.001
	}
	rLoud := LpRDOAllocator{}.Allocate(loud, quietThresholds())
	rQuiet := LpRDOAllocator{}.Allocate(quiet, quietThresholds())

	sumBits := func(r Result) int {
		s := 0
		for i := 0; i < r.NBfu; i++ {
			s += tables.WordLengthBits[r.WordLengthIndex[i]]
		}
		return s
	}
	if sumBits(rLoud) < sumBits(rQuiet) {
		t.Errorf("loud signal got fewer total word-length bits (%d) than quiet (%d)", sumBits(rLoud), sumBits(rQuiet))
	}
}
