package qmf

import (
	"math"
	"testing"
)

func energy(x []float32) float64 {
	var e float64
	for _, v := range x {
		e += float64(v) * float64(v)
	}
	return e
}

// TestAnalysisSynthesisRoundTrip checks spec.md §8's QMF round-trip
// property: qmfSynthesis(qmfAnalysis(x)) should reproduce x once the
// filter's group delay is accounted for, with small residual energy.
func TestAnalysisSynthesisRoundTrip(t *testing.T) {
	const n = 512
	const frames = 8

	a := NewAnalyzer()
	s := NewSynthesizer()

	var input, output []float32
	for f := 0; f < frames; f++ {
		frame := make([]float32, n)
		for i := range frame {
			frame[i] = float32(math.Sin(float64(f*n+i) * 0.05))
		}
		input = append(input, frame...)

		low, high := a.Process(frame)
		out := s.Process(low, high)
		output = append(output, out...)
	}

	// Discard the filter's transient startup (first frame) before comparing;
	// the delay lines need time to fill.
	skip := n
	diff := make([]float32, 0, len(input)-skip)
	for i := skip; i < len(input) && i < len(output); i++ {
		diff = append(diff, input[i]-output[i])
	}

	residual := energy(diff)
	ref := energy(input[skip:])
	if ref == 0 {
		t.Fatal("reference energy is zero")
	}
	ratio := residual / ref
	if ratio > 0.25 {
		t.Errorf("residual/reference energy ratio = %v, want small", ratio)
	}
}

func TestAnalysisTreeShapes(t *testing.T) {
	tree := NewAnalysisTree()
	frame := make([]float32, 512)
	for i := range frame {
		frame[i] = float32(math.Sin(float64(i) * 0.1))
	}
	low, mid, high := tree.Split(frame)
	if len(low) != 128 {
		t.Errorf("len(low) = %d, want 128", len(low))
	}
	if len(mid) != 128 {
		t.Errorf("len(mid) = %d, want 128", len(mid))
	}
	if len(high) != 256 {
		t.Errorf("len(high) = %d, want 256", len(high))
	}
}

func TestSynthesisTreeShapes(t *testing.T) {
	tree := NewSynthesisTree()
	low := make([]float32, 128)
	mid := make([]float32, 128)
	high := make([]float32, 256)
	out := tree.Combine(low, mid, high)
	if len(out) != 512 {
		t.Errorf("len(out) = %d, want 512", len(out))
	}
}

func TestDelayAlignment(t *testing.T) {
	d := NewDelay(39)
	in := make([]float32, 256)
	for i := range in {
		in[i] = float32(i + 1)
	}
	first := d.Process(in)
	for i := 0; i < 39; i++ {
		if first[i] != 0 {
			t.Errorf("first[%d] = %v, want 0 (still draining zero delay line)", i, first[i])
		}
	}
	for i := 39; i < len(first); i++ {
		if first[i] != in[i-39] {
			t.Errorf("first[%d] = %v, want %v", i, first[i], in[i-39])
		}
	}
}
