// Package tables holds the fixed coefficient, frequency-band, and
// bit-allocation tables shared by the encoder and decoder pipelines.
package tables

// Band identifies one of the three QMF bands.
type Band uint8

const (
	BandLow Band = iota
	BandMid
	BandHigh
	NumBands = 3
)

// NumBFU is the total number of block floating units across all bands.
const NumBFU = 52

// bfuSize gives the coefficient count of each BFU, in spectrum order.
// Low occupies BFU[0:20] (sum 128), mid BFU[20:36] (sum 128), high
// BFU[36:52] (sum 256). Sizes are drawn from the set {4,6,7,8,9,10,12,20}.
//
// The partition is a self-consistent design choice: spec.md requires only
// that sizes come from this set and that each band's BFUs sum to its band
// width, not a byte-exact match against any other implementation (floating
// point / bitstream bit-exactness with another implementation is an
// explicit non-goal).
var bfuSize = [NumBFU]int{
	// low band: 20 BFUs, sum 128
	8, 8, 8, 8, 4, 4, 4, 4, 8, 8, 8, 8, 6, 6, 6, 6, 6, 6, 6, 6,
	// mid band: 16 BFUs, sum 128
	6, 6, 6, 6, 7, 7, 7, 7, 9, 9, 9, 9, 10, 10, 10, 10,
	// high band: 16 BFUs, sum 256
	12, 12, 12, 12, 12, 12, 12, 12, 20, 20, 20, 20, 20, 20, 20, 20,
}

// lowBFUCount/midBFUCount/highBFUCount give the number of BFUs in each
// band.
const (
	lowBFUCount  = 20
	midBFUCount  = 16
	highBFUCount = 16
)

// start gives each BFU's starting coefficient index within the 512-wide
// global spectrum, as returned by StartLong and StartShort. Both block modes share one canonical
// partition (see the bfuSize comment above): the offset table is identical
// for long and short blocks in this implementation.
var start [NumBFU]int

func init() {
	offset := 0
	for i, n := range bfuSize {
		start[i] = offset
		offset += n
	}
	if offset != 512 {
		panic("tables: bfuSize table does not sum to 512")
	}
}

// BFUSize returns the coefficient count of BFU i.
func BFUSize(i int) int { return bfuSize[i] }

// StartLong returns the starting global spectrum index of BFU i under the
// long block-mode partition.
func StartLong(i int) int { return start[i] }

// StartShort returns the starting global spectrum index of BFU i under the
// short block-mode partition. Deliberately identical to StartLong: this
// implementation reuses one BFU partition for both block modes rather than
// giving short blocks their own grouping (see the bfuSize comment above)
// — callers should still use StartShort at short-block call
// sites so the two partitions can diverge later without touching callers.
func StartShort(i int) int { return start[i] }

// BandOf returns the band a BFU belongs to.
func BandOf(bfu int) Band {
	switch {
	case bfu < lowBFUCount:
		return BandLow
	case bfu < lowBFUCount+midBFUCount:
		return BandMid
	default:
		return BandHigh
	}
}

// BandRange returns the [start,end) BFU index range for a band.
func BandRange(b Band) (int, int) {
	switch b {
	case BandLow:
		return 0, lowBFUCount
	case BandMid:
		return lowBFUCount, lowBFUCount + midBFUCount
	default:
		return lowBFUCount + midBFUCount, NumBFU
	}
}

// NBFUOptions is the fixed set of active-BFU counts an encoded frame may
// select, 3-bit indexed.
var NBFUOptions = [8]int{20, 28, 32, 36, 40, 44, 48, 52}

// NBFUIndex returns the index into NBFUOptions for n, or -1 if n is not a
// member of the set.
func NBFUIndex(n int) int {
	for i, v := range NBFUOptions {
		if v == n {
			return i
		}
	}
	return -1
}

// WordLengthBits maps a 4-bit word-length index to the bit width used for
// each coefficient in a BFU. Index 0 means the BFU is omitted.
var WordLengthBits = [16]int{0, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

// BandSampleCount is the band-frame length (in QMF-domain samples) per band.
var BandSampleCount = [NumBands]int{128, 128, 256}
