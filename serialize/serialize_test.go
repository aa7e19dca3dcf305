package serialize

import (
	"testing"

	atrac1 "github.com/mlassila/go-atrac1"
	"github.com/mlassila/go-atrac1/internal/tables"
)

func TestSerializeFrameLength(t *testing.T) {
	var f atrac1.EncodedFrame
	f.NBFU = 20
	unit := SerializeFrame(&f)
	if len(unit) != FrameBytes {
		t.Fatalf("len(unit) = %d, want %d", len(unit), FrameBytes)
	}
}

func TestAllZeroFrameRoundTrips(t *testing.T) {
	var f atrac1.EncodedFrame
	f.NBFU = 20
	unit := SerializeFrame(&f)
	got, err := DeserializeFrame(unit[:])
	if err != nil {
		t.Fatalf("DeserializeFrame error: %v", err)
	}
	if got.NBFU != f.NBFU {
		t.Errorf("NBFU = %d, want %d", got.NBFU, f.NBFU)
	}
	for i := 0; i < got.NBFU; i++ {
		if got.WordLengthIndex[i] != 0 || got.ScaleFactorIndex[i] != 0 {
			t.Errorf("BFU %d not zero after round-trip: wl=%d sf=%d", i, got.WordLengthIndex[i], got.ScaleFactorIndex[i])
		}
	}
}

// TestFullFrameRoundTripsExactly is spec.md §8 scenario 3: nBfu=52, all
// block modes long, scale-factor index 10 everywhere, word-length index 8
// everywhere, coefficients filled with 123.
func TestFullFrameRoundTripsExactly(t *testing.T) {
	var f atrac1.EncodedFrame
	f.NBFU = tables.NumBFU
	for i := 0; i < tables.NumBFU; i++ {
		f.ScaleFactorIndex[i] = 10
		f.WordLengthIndex[i] = 8
		for j := 0; j < tables.BFUSize(i); j++ {
			f.Coefficients[i][j] = 123
		}
	}

	unit := SerializeFrame(&f)
	if len(unit) != FrameBytes {
		t.Fatalf("len(unit) = %d, want %d", len(unit), FrameBytes)
	}

	allZero := true
	for _, b := range unit {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Fatalf("serialized unit is all zero, want non-zero content")
	}

	got, err := DeserializeFrame(unit[:])
	if err != nil {
		t.Fatalf("DeserializeFrame error: %v", err)
	}
	if got.NBFU != f.NBFU {
		t.Fatalf("NBFU = %d, want %d", got.NBFU, f.NBFU)
	}
	for i := 0; i < tables.NumBFU; i++ {
		if got.ScaleFactorIndex[i] != 10 {
			t.Errorf("BFU %d scaleFactorIndex = %d, want 10", i, got.ScaleFactorIndex[i])
		}
		if got.WordLengthIndex[i] != 8 {
			t.Errorf("BFU %d wordLengthIndex = %d, want 8", i, got.WordLengthIndex[i])
		}
		for j := 0; j < tables.BFUSize(i); j++ {
			if got.Coefficients[i][j] != 123 {
				t.Errorf("BFU %d coef %d = %d, want 123", i, j, got.Coefficients[i][j])
			}
		}
	}
}

// TestDeserializeRejectsWrongSize is spec.md §8 scenario 4.
func TestDeserializeRejectsWrongSize(t *testing.T) {
	_, err := DeserializeFrame(make([]byte, 100))
	if err != atrac1.ErrInvalidFrameSize {
		t.Errorf("err = %v, want ErrInvalidFrameSize", err)
	}
}

func TestNegativeCoefficientRoundTrips(t *testing.T) {
	var f atrac1.EncodedFrame
	f.NBFU = 20
	f.ScaleFactorIndex[0] = 30
	f.WordLengthIndex[0] = 8 // wordLengthBits[8] = 9 bits -> range [-256,255]
	f.Coefficients[0][0] = -200

	unit := SerializeFrame(&f)
	got, err := DeserializeFrame(unit[:])
	if err != nil {
		t.Fatalf("DeserializeFrame error: %v", err)
	}
	if got.Coefficients[0][0] != -200 {
		t.Errorf("coefficient round-trip = %d, want -200", got.Coefficients[0][0])
	}
}
