// Package qmf implements the two-band perfect-reconstruction Quadrature
// Mirror Filter used by the QMF analysis/synthesis tree (spec.md §4.4),
// built from a 48-tap prototype filter split into even/odd phases
// (internal/tables.QMFEven/QMFOdd).
package qmf

import "github.com/mlassila/go-atrac1/internal/tables"

const delayLen = 46

// Analyzer splits an N-sample sequence into two N/2-sample low/high bands,
// retaining a 46-sample delay line across calls.
type Analyzer struct {
	delay [delayLen]float32
}

// NewAnalyzer returns an Analyzer with a zeroed delay line.
func NewAnalyzer() *Analyzer { return &Analyzer{} }

// Process filters input (length must be even) into low and high bands,
// each of length len(input)/2.
func (a *Analyzer) Process(input []float32) (low, high []float32) {
	n := len(input)
	half := n / 2
	work := make([]float32, delayLen+n)
	copy(work[:delayLen], a.delay[:])
	copy(work[delayLen:], input)

	low = make([]float32, half)
	high = make([]float32, half)
	for i := 0; i < half; i++ {
		var evenSum, oddSum float64
		for j := 0; j < tables.QMFTaps/2; j++ {
			evenSum += float64(work[2*i+47-2*j]) * tables.QMFEven[j]
			oddSum += float64(work[2*i+46-2*j]) * tables.QMFOdd[j]
		}
		low[i] = float32(evenSum + oddSum)
		high[i] = float32(evenSum - oddSum)
	}

	copy(a.delay[:], work[n:n+delayLen])
	return low, high
}

// Synthesizer recombines two N/2-sample low/high bands into an N-sample
// sequence, retaining a 46-sample delay line across calls.
type Synthesizer struct {
	delay [delayLen]float32
}

// NewSynthesizer returns a Synthesizer with a zeroed delay line.
func NewSynthesizer() *Synthesizer { return &Synthesizer{} }

// Process reconstructs an N-sample sequence from low and high bands of
// equal length.
func (s *Synthesizer) Process(low, high []float32) []float32 {
	half := len(low)
	n := 2 * half
	upsampled := make([]float32, n)
	for i := 0; i < half; i++ {
		upsampled[2*i] = 0.5 * (low[i] + high[i])
		upsampled[2*i+1] = 0.5 * (low[i] - high[i])
	}

	work := make([]float32, delayLen+n)
	copy(work[:delayLen], s.delay[:])
	copy(work[delayLen:], upsampled)

	out := make([]float32, n)
	for i := 0; i < half; i++ {
		var evenSum, oddSum float64
		for j := 0; j < tables.QMFTaps/2; j++ {
			evenSum += float64(work[2*i+47-2*j]) * tables.QMFEven[j]
			oddSum += float64(work[2*i+46-2*j]) * tables.QMFOdd[j]
		}
		phase0 := evenSum + oddSum
		phase1 := evenSum - oddSum
		out[2*i] = float32(phase1)
		out[2*i+1] = float32(phase0)
	}

	copy(s.delay[:], work[n:n+delayLen])
	return out
}

// Delay is a pure FIFO delay line of fixed length, used to align the high
// band's timing with the extra QMF stage the low/mid path goes through.
type Delay struct {
	buf []float32
}

// NewDelay returns a Delay of the given length, zero-initialized.
func NewDelay(length int) *Delay {
	return &Delay{buf: make([]float32, length)}
}

// Process returns input delayed by len(d.buf) samples, updating internal
// state for the next call.
func (d *Delay) Process(input []float32) []float32 {
	n := len(input)
	work := make([]float32, len(d.buf)+n)
	copy(work, d.buf)
	copy(work[len(d.buf):], input)

	out := make([]float32, n)
	copy(out, work[:n])
	copy(d.buf, work[n:])
	return out
}
