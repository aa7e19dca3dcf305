// Package serialize packs EncodedFrame values into 212-byte sound units
// and back (spec.md §4.11), bit-exact.
package serialize

import (
	atrac1 "github.com/mlassila/go-atrac1"
	"github.com/mlassila/go-atrac1/internal/bitio"
	"github.com/mlassila/go-atrac1/internal/tables"
)

// FrameBytes is the fixed wire size of one sound unit.
const FrameBytes = 212

// SerializeFrame packs f into a 212-byte sound unit per spec.md §4.11's
// layout.
func SerializeFrame(f *atrac1.EncodedFrame) atrac1.SoundUnit {
	w := bitio.NewWriter(FrameBytes)

	w.WriteBits(uint32(2-int(f.BlockModes[tables.BandLow])), 2)
	w.WriteBits(uint32(2-int(f.BlockModes[tables.BandMid])), 2)
	w.WriteBits(uint32(3-int(f.BlockModes[tables.BandHigh])), 2)
	w.WriteBits(uint32(tables.NBFUIndex(f.NBFU)), 3)
	w.WriteBits(0, 5) // header padding

	for i := 0; i < f.NBFU; i++ {
		w.WriteBits(uint32(f.WordLengthIndex[i]), 4)
	}
	for i := 0; i < f.NBFU; i++ {
		w.WriteBits(uint32(f.ScaleFactorIndex[i]), 6)
	}
	for i := 0; i < f.NBFU; i++ {
		bits := tables.WordLengthBits[f.WordLengthIndex[i]]
		if bits == 0 {
			continue
		}
		size := tables.BFUSize(i)
		mask := uint32(1)<<uint(bits) - 1
		for j := 0; j < size; j++ {
			w.WriteBits(uint32(f.Coefficients[i][j])&mask, bits)
		}
	}

	var unit atrac1.SoundUnit
	copy(unit[:], w.Bytes())
	return unit
}

// DeserializeFrame unpacks a 212-byte sound unit into an EncodedFrame.
// Returns atrac1.ErrInvalidFrameSize if buf is not exactly 212 bytes.
func DeserializeFrame(buf []byte) (atrac1.EncodedFrame, error) {
	if len(buf) != FrameBytes {
		return atrac1.EncodedFrame{}, atrac1.ErrInvalidFrameSize
	}

	r := bitio.NewReader(buf)
	var f atrac1.EncodedFrame

	lowStored := int(r.ReadBits(2))
	midStored := int(r.ReadBits(2))
	highStored := int(r.ReadBits(2))
	f.BlockModes[tables.BandLow] = atrac1.BlockMode(2 - lowStored)
	f.BlockModes[tables.BandMid] = atrac1.BlockMode(2 - midStored)
	f.BlockModes[tables.BandHigh] = atrac1.BlockMode(3 - highStored)

	nBfuIndex := int(r.ReadBits(3))
	r.ReadBits(5) // header padding
	f.NBFU = tables.NBFUOptions[nBfuIndex]

	for i := 0; i < f.NBFU; i++ {
		f.WordLengthIndex[i] = uint8(r.ReadBits(4))
	}
	for i := 0; i < f.NBFU; i++ {
		f.ScaleFactorIndex[i] = uint8(r.ReadBits(6))
	}
	for i := 0; i < f.NBFU; i++ {
		bits := tables.WordLengthBits[f.WordLengthIndex[i]]
		if bits == 0 {
			continue
		}
		size := tables.BFUSize(i)
		for j := 0; j < size; j++ {
			raw := r.ReadBits(bits)
			f.Coefficients[i][j] = signExtend(raw, bits)
		}
	}
	return f, nil
}

// signExtend reinterprets the low nbits of raw as a two's-complement
// signed value.
func signExtend(raw uint32, nbits int) int32 {
	signBit := uint32(1) << uint(nbits-1)
	if raw&signBit != 0 {
		return int32(raw) - int32(uint32(1)<<uint(nbits))
	}
	return int32(raw)
}
