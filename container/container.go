// Package container implements the 2048-byte AEA file header (spec.md
// §4.11.1), the framing around the 212-byte sound units produced by
// package serialize.
package container

import (
	"encoding/binary"

	atrac1 "github.com/mlassila/go-atrac1"
)

// HeaderBytes is the fixed AEA header size.
const HeaderBytes = 2048

const (
	titleOffset      = 4
	titleBytes       = 256
	frameCountOffset = 260
	channelOffset    = 264
)

var magic = [4]byte{0x00, 0x08, 0x00, 0x00}

// Header is the decoded form of an AEA file header.
type Header struct {
	Title        string
	FrameCount   uint32
	ChannelCount uint8
}

// Create builds a 2048-byte AEA header. title must be ASCII and at most
// 255 bytes; otherwise it returns atrac1.ErrInvalidTitle.
func Create(title string, frameCount uint32, channelCount uint8) ([HeaderBytes]byte, error) {
	var buf [HeaderBytes]byte
	if len(title) > titleBytes-1 {
		return buf, atrac1.ErrInvalidTitle
	}
	for i := 0; i < len(title); i++ {
		if title[i] > 0x7F {
			return buf, atrac1.ErrInvalidTitle
		}
	}

	copy(buf[0:4], magic[:])
	copy(buf[titleOffset:titleOffset+titleBytes], title)
	binary.LittleEndian.PutUint32(buf[frameCountOffset:frameCountOffset+4], frameCount)
	buf[channelOffset] = channelCount
	return buf, nil
}

// Parse decodes a 2048-byte AEA header. Returns atrac1.ErrInvalidMagic if
// the magic bytes don't match.
func Parse(buf [HeaderBytes]byte) (Header, error) {
	if buf[0] != magic[0] || buf[1] != magic[1] || buf[2] != magic[2] || buf[3] != magic[3] {
		return Header{}, atrac1.ErrInvalidMagic
	}
	titleRaw := buf[titleOffset : titleOffset+titleBytes]
	end := len(titleRaw)
	for i, b := range titleRaw {
		if b == 0 {
			end = i
			break
		}
	}
	return Header{
		Title:        string(titleRaw[:end]),
		FrameCount:   binary.LittleEndian.Uint32(buf[frameCountOffset : frameCountOffset+4]),
		ChannelCount: buf[channelOffset],
	}, nil
}
