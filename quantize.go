package atrac1

import (
	"github.com/mlassila/go-atrac1/internal/alloc"
	"github.com/mlassila/go-atrac1/internal/quant"
	"github.com/mlassila/go-atrac1/internal/tables"
)

// quantizeInto fills out's scale-factor/word-length/coefficient fields
// for the first result.NBfu BFUs from the allocator's result, quantizing
// each BFU's slice of spectrum against its assigned scale factor and
// word length (spec.md §4.10).
func quantizeInto(out *EncodedFrame, spectrum []float32, result alloc.Result) {
	for i := 0; i < result.NBfu; i++ {
		start := tables.StartLong(i)
		size := tables.BFUSize(i)
		sfIndex := result.ScaleFactorIndex[i]
		wl := result.WordLengthIndex[i]

		out.ScaleFactorIndex[i] = sfIndex
		out.WordLengthIndex[i] = uint8(wl)

		q := quant.Quantize(spectrum[start:start+size], sfIndex, wl)
		copy(out.Coefficients[i][:], q)
	}
}

// dequantizeSpectrum reconstructs the 512-wide spectrum from an
// EncodedFrame's quantized coefficients, BFUs beyond NBFU reading as
// silence.
func dequantizeSpectrum(f *EncodedFrame) [512]float32 {
	var spectrum [512]float32
	for i := 0; i < f.NBFU; i++ {
		start := tables.StartLong(i)
		size := tables.BFUSize(i)
		sfIndex := f.ScaleFactorIndex[i]
		wl := int(f.WordLengthIndex[i])

		vals := quant.Dequantize(f.Coefficients[i][:size], sfIndex, wl)
		copy(spectrum[start:start+size], vals)
	}
	return spectrum
}
