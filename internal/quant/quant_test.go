package quant

import (
	"math"
	"testing"

	"github.com/mlassila/go-atrac1/internal/tables"
)

func TestZeroWordLengthProducesAllZeros(t *testing.T) {
	coef := []float32{1, 2, 3}
	got := Quantize(coef, 10, 0)
	for _, v := range got {
		if v != 0 {
			t.Errorf("Quantize with wl=0 produced non-zero output: %v", got)
		}
	}
}

func TestZeroScaleFactorProducesAllZeros(t *testing.T) {
	coef := []float32{1, 2, 3}
	got := Quantize(coef, 0, 8)
	for _, v := range got {
		if v != 0 {
			t.Errorf("Quantize with sfIndex=0 produced non-zero output: %v", got)
		}
	}
}

func TestQuantizeDequantizeRoundTrip(t *testing.T) {
	coef := []float32{0.1, -0.2, 0.05, -0.3}
	var maxAbs float64
	for _, c := range coef {
		if math.Abs(float64(c)) > maxAbs {
			maxAbs = math.Abs(float64(c))
		}
	}
	sfIndex := ScaleFactorIndexFor(maxAbs)
	wl := 10

	q := Quantize(coef, sfIndex, wl)
	back := Dequantize(q, sfIndex, wl)

	bits := tables.WordLengthBits[wl]
	tolerance := tables.ScaleFactor[sfIndex] / float64(int(1)<<uint(bits-1))
	for i := range coef {
		diff := math.Abs(float64(coef[i]) - float64(back[i]))
		if diff > tolerance*1.5 {
			t.Errorf("coef[%d]: round-trip diff %v exceeds tolerance %v", i, diff, tolerance)
		}
	}
}

func TestQuantizeClipsToRange(t *testing.T) {
	coef := []float32{1000}
	got := Quantize(coef, 1, 2) // wl=2 -> bits=3, qRange=3
	if got[0] > 3 || got[0] < -4 {
		t.Errorf("Quantize did not clip: got %v", got[0])
	}
}
