package stream

import atrac1 "github.com/mlassila/go-atrac1"

// StereoInterleave zips two independent channel encoders' sound-unit
// sequences into the AEA container's unit-by-unit L,R,L,R ordering. left
// and right are synchronous pull iterators (value, ok); the returned
// iterator yields left's unit, then right's, alternating, stopping as
// soon as either side is exhausted.
func StereoInterleave(left, right func() (atrac1.SoundUnit, bool)) func() (atrac1.SoundUnit, bool) {
	var pendingRight atrac1.SoundUnit
	var havePendingRight bool
	return func() (atrac1.SoundUnit, bool) {
		if havePendingRight {
			havePendingRight = false
			return pendingRight, true
		}
		l, ok := left()
		if !ok {
			return atrac1.SoundUnit{}, false
		}
		r, ok := right()
		if !ok {
			return atrac1.SoundUnit{}, false
		}
		pendingRight = r
		havePendingRight = true
		return l, true
	}
}

// StereoDeinterleave splits an L,R,L,R sound-unit sequence back into two
// per-channel pull iterators. Callers must step left and right in
// lockstep (one call to each per frame, left first): left returns the
// current pair's unit without consuming it, so calling left repeatedly
// returns the same unit, while each call to right consumes the current
// pair and advances the underlying stream.
func StereoDeinterleave(units func() (atrac1.SoundUnit, bool)) (left, right func() (atrac1.SoundUnit, bool)) {
	type pair struct {
		l, r atrac1.SoundUnit
	}
	var buffered []pair
	pull := func() bool {
		l, ok := units()
		if !ok {
			return false
		}
		r, ok := units()
		if !ok {
			return false
		}
		buffered = append(buffered, pair{l, r})
		return true
	}

	left = func() (atrac1.SoundUnit, bool) {
		if len(buffered) == 0 && !pull() {
			return atrac1.SoundUnit{}, false
		}
		p := buffered[0]
		return p.l, true
	}
	right = func() (atrac1.SoundUnit, bool) {
		if len(buffered) == 0 && !pull() {
			return atrac1.SoundUnit{}, false
		}
		p := buffered[0]
		buffered = buffered[1:]
		return p.r, true
	}
	return left, right
}
