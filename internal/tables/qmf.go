package tables

import "math"

// QMFTaps is the length of the prototype QMF low-pass filter.
const QMFTaps = 48

// QMFEven and QMFOdd are the even/odd-indexed taps of the 48-tap QMF
// prototype filter (24 entries each), used by the analysis/synthesis
// convolution in internal/qmf.
//
// The prototype is a Hamming-windowed half-band low-pass sinc filter
// (cutoff at one quarter the sample rate, DC gain normalized to 1), taps
// deinterleaved into even/odd phases as the analysis/synthesis formulas in
// spec.md §4.4 require. This is a from-scratch design rather than a
// reproduction of any external reference codec's published coefficient
// table: cross-implementation bit-exactness is an explicit spec non-goal,
// and the design below satisfies the quadrature-mirror structure the
// analysis/synthesis equations depend on (see DESIGN.md).
var (
	QMFEven [QMFTaps / 2]float64
	QMFOdd  [QMFTaps / 2]float64
)

func init() {
	const m = QMFTaps - 1 // 47
	const fc = 0.25       // normalized cutoff, quarter sample rate

	var proto [QMFTaps]float64
	sum := 0.0
	for n := 0; n < QMFTaps; n++ {
		x := float64(n) - float64(m)/2
		var s float64
		if x == 0 {
			s = 2 * fc
		} else {
			s = math.Sin(2*math.Pi*fc*x) / (math.Pi * x)
		}
		w := 0.54 - 0.46*math.Cos(2*math.Pi*float64(n)/float64(m))
		proto[n] = s * w
		sum += proto[n]
	}
	for n := range proto {
		proto[n] /= sum
	}
	for j := 0; j < QMFTaps/2; j++ {
		QMFEven[j] = proto[2*j]
		QMFOdd[j] = proto[2*j+1]
	}
}
