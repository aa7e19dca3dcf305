package container

import (
	"bufio"
	"io"

	atrac1 "github.com/mlassila/go-atrac1"
)

// Writer frames a header plus a sequence of sound units into an AEA
// file, one channel-interleaved unit at a time.
type Writer struct {
	w io.Writer
}

// NewWriter writes header immediately and returns a Writer for the
// sound units that follow it.
func NewWriter(w io.Writer, header [HeaderBytes]byte) (*Writer, error) {
	if _, err := w.Write(header[:]); err != nil {
		return nil, err
	}
	return &Writer{w: bufio.NewWriter(w)}, nil
}

// WriteUnit appends one 212-byte sound unit.
func (w *Writer) WriteUnit(unit atrac1.SoundUnit) error {
	_, err := w.w.Write(unit[:])
	return err
}

// Flush flushes any buffered output to the underlying writer.
func (w *Writer) Flush() error {
	if bw, ok := w.w.(*bufio.Writer); ok {
		return bw.Flush()
	}
	return nil
}

// Reader reads an AEA header followed by a sequence of sound units.
type Reader struct {
	r      io.Reader
	Header Header
}

// NewReader reads and parses the 2048-byte header, then returns a Reader
// positioned at the first sound unit.
func NewReader(r io.Reader) (*Reader, error) {
	var buf [HeaderBytes]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return nil, atrac1.ErrTruncated
		}
		return nil, err
	}
	header, err := Parse(buf)
	if err != nil {
		return nil, err
	}
	return &Reader{r: r, Header: header}, nil
}

// ReadUnit reads the next 212-byte sound unit. Returns io.EOF when the
// stream is exhausted exactly at a unit boundary, or atrac1.ErrTruncated
// if a partial unit remains.
func (r *Reader) ReadUnit() (atrac1.SoundUnit, error) {
	var unit atrac1.SoundUnit
	n, err := io.ReadFull(r.r, unit[:])
	if err == io.EOF {
		return unit, io.EOF
	}
	if err == io.ErrUnexpectedEOF || (err != nil && n > 0 && n < len(unit)) {
		return unit, atrac1.ErrTruncated
	}
	return unit, err
}
