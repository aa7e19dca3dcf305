package atrac1

import "github.com/mlassila/go-atrac1/internal/tables"

// Frame is one 512-sample PCM frame, single-precision in [-1, 1].
type Frame = [512]float32

// SoundUnit is one 212-byte encoded wire frame.
type SoundUnit = [212]byte

// BlockMode selects the MDCT window shape for one band in one frame.
type BlockMode uint8

const (
	Long BlockMode = iota
	Short
)

// String implements fmt.Stringer.
func (m BlockMode) String() string {
	if m == Short {
		return "short"
	}
	return "long"
}

// EncodedFrame is the logical (unserialized) form of one sound unit.
// Coefficients are quantized integers, not dequantized floats (spec.md
// §4.10); Coefficients[i] beyond BFUSize(i) entries are unused.
type EncodedFrame struct {
	NBFU             int
	BlockModes       [tables.NumBands]BlockMode
	ScaleFactorIndex [tables.NumBFU]uint8
	WordLengthIndex  [tables.NumBFU]uint8
	Coefficients     [tables.NumBFU][20]int32
}
