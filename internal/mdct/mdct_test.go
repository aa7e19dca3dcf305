package mdct

import (
	"math"
	"testing"
)

func TestForwardInverseShapes(t *testing.T) {
	for _, n := range []int{64, 256, 512} {
		m := New(n)
		if m.N() != n {
			t.Errorf("N() = %d, want %d", m.N(), n)
		}
		if m.N2() != n/2 {
			t.Errorf("N2() = %d, want %d", m.N2(), n/2)
		}

		in := make([]float32, n)
		for i := range in {
			in[i] = float32(math.Sin(float64(i) * 0.1))
		}
		coeffs := make([]float32, n/2)
		m.Forward(in, coeffs)

		out := make([]float32, n)
		m.Inverse(coeffs, out)

		if len(out) != n {
			t.Fatalf("Inverse output length = %d, want %d", len(out), n)
		}
	}
}

func TestOverlapAddThreeConsecutiveLongBlocks(t *testing.T) {
	const n = 256
	m := New(n)
	n2 := m.N2()

	window := make([]float64, n)
	for i := range window {
		window[i] = math.Sin((float64(i) + 0.5) * math.Pi / float64(n))
	}

	mkBlock := func(seed float64) []float32 {
		in := make([]float32, n)
		for i := range in {
			in[i] = float32(math.Sin(float64(i)*0.05+seed)) * float32(window[i])
		}
		c := make([]float32, n2)
		m.Forward(in, c)
		out := make([]float32, n)
		m.Inverse(c, out)
		for i := range out {
			out[i] *= float32(window[i])
		}
		return out
	}

	a := mkBlock(0)
	b := mkBlock(1)
	c := mkBlock(2)

	mid1 := overlapAdd(a[n2:], b[:n2], window)
	mid2 := overlapAdd(b[n2:], c[:n2], window)

	if len(mid1) != n || len(mid2) != n {
		t.Fatalf("OverlapAdd length = %d,%d want %d", len(mid1), len(mid2), n)
	}
}
