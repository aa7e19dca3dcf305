package tables

import "math"

// NumCriticalBands is the number of Bark critical bands used by the
// psychoacoustic model.
const NumCriticalBands = 25

// BarkBandEdges are the Zwicker/Terhardt critical-band edge frequencies in
// Hz, spanning 0..22050 Hz (Nyquist at 44.1 kHz) in NumCriticalBands+1
// entries.
var BarkBandEdges = [NumCriticalBands + 1]float64{
	0, 100, 200, 300, 400, 510, 630, 770, 920, 1080, 1270, 1480, 1720,
	2000, 2320, 2700, 3150, 3700, 4400, 5300, 6400, 7700, 9500, 12000,
	15500, 22050,
}

// AbsoluteThreshold holds the absolute threshold of hearing, in dB, at the
// center frequency of each critical band, computed from Terhardt's
// closed-form approximation:
//
//	T_q(f) = 3.64*(f/1000)^-0.8 - 6.5*exp(-0.6*(f/1000-3.3)^2) + 1e-3*(f/1000)^4
var AbsoluteThreshold [NumCriticalBands]float64

func init() {
	for b := 0; b < NumCriticalBands; b++ {
		f := (BarkBandEdges[b] + BarkBandEdges[b+1]) / 2
		if f < 20 {
			f = 20 // formula diverges near 0 Hz
		}
		khz := f / 1000
		AbsoluteThreshold[b] = 3.64*math.Pow(khz, -0.8) -
			6.5*math.Exp(-0.6*math.Pow(khz-3.3, 2)) +
			1e-3*math.Pow(khz, 4)
	}
}

// BandForFrequency returns the critical-band index containing f Hz.
func BandForFrequency(f float64) int {
	for b := 0; b < NumCriticalBands; b++ {
		if f < BarkBandEdges[b+1] {
			return b
		}
	}
	return NumCriticalBands - 1
}

// BarkZ converts a frequency in Hz to an approximate Bark value using the
// Traunmuller formula, z = 26.81*f/(1960+f) - 0.53, with the standard
// correction applied below z=2 and above z=20.1. The result is not
// clamped: it is slightly negative near 0 Hz and about 25 at 22050 Hz.
func BarkZ(f float64) float64 {
	z := 26.81*f/(1960+f) - 0.53
	if z < 2 {
		z += 0.15 * (2 - z)
	} else if z > 20.1 {
		z += 0.22 * (z - 20.1)
	}
	return z
}
