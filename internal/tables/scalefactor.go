package tables

import "math"

// ScaleFactor is the 64-entry log-spaced scale-factor table,
// SF[i] = 2^(i/3 - 21).
var ScaleFactor [64]float64

func init() {
	for i := range ScaleFactor {
		ScaleFactor[i] = math.Pow(2, float64(i)/3-21)
	}
}

// ScaleFactorIndexFor returns the smallest index i with ScaleFactor[i] >=
// maxAbs, or 0 if maxAbs is zero (or smaller than the table's smallest
// entry, which only occurs for all-zero input given the table's range).
func ScaleFactorIndexFor(maxAbs float64) uint8 {
	if maxAbs <= 0 {
		return 0
	}
	for i, sf := range ScaleFactor {
		if sf >= maxAbs {
			return uint8(i)
		}
	}
	return uint8(len(ScaleFactor) - 1)
}
