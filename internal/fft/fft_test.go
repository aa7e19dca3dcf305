package fft

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestNewPlanRejectsNonPowerOfTwo(t *testing.T) {
	for _, n := range []int{0, 1, 3, 5, 17, 100} {
		if _, err := NewPlan(n); err == nil {
			t.Errorf("NewPlan(%d) expected error, got nil", n)
		}
	}
}

func TestForwardDC(t *testing.T) {
	n := 16
	p, err := NewPlan(n)
	if err != nil {
		t.Fatal(err)
	}
	re := make([]float32, n)
	im := make([]float32, n)
	for i := range re {
		re[i] = 1
	}
	if err := p.Forward(re, im); err != nil {
		t.Fatal(err)
	}
	if math.Abs(float64(re[0])-float64(n)) > 1e-3 {
		t.Errorf("re[0] = %v, want %v", re[0], n)
	}
	for i := 1; i < n; i++ {
		if math.Abs(float64(re[i])) > 1e-3 || math.Abs(float64(im[i])) > 1e-3 {
			t.Errorf("bin %d not zero: %v+%vi", i, re[i], im[i])
		}
	}
}

func TestForwardInverseRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		logN := rapid.IntRange(1, 7).Draw(t, "logN")
		n := 1 << logN
		p, err := NewPlan(n)
		if err != nil {
			t.Fatal(err)
		}

		re := make([]float32, n)
		im := make([]float32, n)
		origRe := make([]float32, n)
		origIm := make([]float32, n)
		for i := range re {
			re[i] = float32(rapid.Float64Range(-1, 1).Draw(t, "re"))
			im[i] = float32(rapid.Float64Range(-1, 1).Draw(t, "im"))
			origRe[i] = re[i]
			origIm[i] = im[i]
		}

		if err := p.Forward(re, im); err != nil {
			t.Fatal(err)
		}
		if err := p.Inverse(re, im); err != nil {
			t.Fatal(err)
		}

		for i := range re {
			if math.Abs(float64(re[i]-origRe[i])) > 1e-3 {
				t.Fatalf("re[%d] = %v, want %v", i, re[i], origRe[i])
			}
			if math.Abs(float64(im[i]-origIm[i])) > 1e-3 {
				t.Fatalf("im[%d] = %v, want %v", i, im[i], origIm[i])
			}
		}
	})
}

func TestParseval(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		logN := rapid.IntRange(2, 6).Draw(t, "logN")
		n := 1 << logN
		p, err := NewPlan(n)
		if err != nil {
			t.Fatal(err)
		}

		re := make([]float32, n)
		im := make([]float32, n)
		var timeEnergy float64
		for i := range re {
			re[i] = float32(rapid.Float64Range(-1, 1).Draw(t, "re"))
			timeEnergy += float64(re[i]) * float64(re[i])
		}

		if err := p.Forward(re, im); err != nil {
			t.Fatal(err)
		}

		var freqEnergy float64
		for i := range re {
			freqEnergy += float64(re[i])*float64(re[i]) + float64(im[i])*float64(im[i])
		}
		freqEnergy /= float64(n)

		if math.Abs(timeEnergy-freqEnergy) > 1e-2*(timeEnergy+1) {
			t.Fatalf("Parseval mismatch: time=%v freq/N=%v", timeEnergy, freqEnergy)
		}
	})
}

func TestLinearity(t *testing.T) {
	n := 32
	p, err := NewPlan(n)
	if err != nil {
		t.Fatal(err)
	}

	a := make([]float32, n)
	b := make([]float32, n)
	for i := range a {
		a[i] = float32(i) * 0.1
		b[i] = float32(n-i) * 0.05
	}
	sum := make([]float32, n)
	for i := range sum {
		sum[i] = a[i] + b[i]
	}

	zeroIm := make([]float32, n)
	ai, bi, si := append([]float32{}, zeroIm...), append([]float32{}, zeroIm...), append([]float32{}, zeroIm...)

	aRe := append([]float32{}, a...)
	bRe := append([]float32{}, b...)
	sRe := append([]float32{}, sum...)

	if err := p.Forward(aRe, ai); err != nil {
		t.Fatal(err)
	}
	if err := p.Forward(bRe, bi); err != nil {
		t.Fatal(err)
	}
	if err := p.Forward(sRe, si); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < n; i++ {
		wantRe := aRe[i] + bRe[i]
		wantIm := ai[i] + bi[i]
		if math.Abs(float64(sRe[i]-wantRe)) > 1e-3 || math.Abs(float64(si[i]-wantIm)) > 1e-3 {
			t.Fatalf("bin %d: FFT(a+b)=%v+%vi, want %v+%vi", i, sRe[i], si[i], wantRe, wantIm)
		}
	}
}

func TestShared(t *testing.T) {
	p1, err := Shared(64)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := Shared(64)
	if err != nil {
		t.Fatal(err)
	}
	if p1 != p2 {
		t.Fatal("Shared returned distinct plans for the same size")
	}
}
