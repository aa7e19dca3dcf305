// Package fft implements an in-place radix-2 Cooley-Tukey FFT over
// equal-length real/imag float32 slices.
//
// Adapted from the teacher codec's internal/fft package: that package
// targets AAC's mixed-radix {2,3,4,5} transform sizes via a Fortran-style
// passf2/passf4 butterfly cascade. ATRAC1 only ever needs FFT sizes that
// are powers of two (16, 64, 128, 256), so this package keeps the
// teacher's twiddle-table-once-per-size-and-cache discipline but
// simplifies the butterfly network to plain radix-2 decimation-in-time,
// which is both the idiomatic and the sufficient choice here.
package fft

import (
	"fmt"
	"math"
	"math/bits"
)

// Plan holds the precomputed twiddle factors and bit-reversal permutation
// for a fixed FFT size. All internal accumulation is in complex128 to
// avoid the twiddle drift that would otherwise compound across the
// psychoacoustic model's repeated magnitude-spectrum computations (spec
// §4.2), even though callers operate on float32 slices.
type Plan struct {
	n       int
	rev     []int
	twiddle []complex128 // n/2 entries, e^{-2*pi*i*k/n}
}

// NewPlan returns a Plan for size n, which must be a power of two and at
// least 2.
func NewPlan(n int) (*Plan, error) {
	if n < 2 || n&(n-1) != 0 {
		return nil, fmt.Errorf("fft: size %d is not a power of two", n)
	}

	logN := bits.TrailingZeros(uint(n))
	rev := make([]int, n)
	for i := range rev {
		rev[i] = bits.Reverse(uint(i)) >> (bits.UintSize - uint(logN))
	}

	tw := make([]complex128, n/2)
	for k := range tw {
		theta := -2 * math.Pi * float64(k) / float64(n)
		tw[k] = complex(math.Cos(theta), math.Sin(theta))
	}

	return &Plan{n: n, rev: rev, twiddle: tw}, nil
}

// Size returns the FFT size this plan was built for.
func (p *Plan) Size() int { return p.n }

// Forward computes the forward DFT of re+i*im in place.
func (p *Plan) Forward(re, im []float32) error {
	return p.transform(re, im, false)
}

// Inverse computes the inverse DFT of re+i*im in place, including the 1/N
// normalization.
func (p *Plan) Inverse(re, im []float32) error {
	return p.transform(re, im, true)
}

func (p *Plan) transform(re, im []float32, inverse bool) error {
	n := p.n
	if len(re) != n || len(im) != n {
		return fmt.Errorf("fft: plan size %d does not match input length re=%d im=%d", n, len(re), len(im))
	}

	buf := make([]complex128, n)
	for i, r := range p.rev {
		buf[i] = complex(float64(re[r]), float64(im[r]))
	}

	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		stride := n / size
		for start := 0; start < n; start += size {
			for k := 0; k < half; k++ {
				tw := p.twiddle[k*stride]
				if inverse {
					tw = complex(real(tw), -imag(tw))
				}
				a := buf[start+k]
				b := buf[start+k+half] * tw
				buf[start+k] = a + b
				buf[start+k+half] = a - b
			}
		}
	}

	scale := 1.0
	if inverse {
		scale = 1.0 / float64(n)
	}
	for i, c := range buf {
		re[i] = float32(real(c) * scale)
		im[i] = float32(imag(c) * scale)
	}
	return nil
}
