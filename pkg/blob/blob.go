// Package blob implements the little-endian binary buffer used by shader
// graph files and by command snapshots.
//
// A [Writer] appends fixed-width values to a growing byte slice; a [Reader]
// consumes them in the same order. The Reader carries a sticky error: after
// the first short read every subsequent call returns the zero value, so call
// sites can chain reads and check [Reader.Err] once at the end.
package blob

import (
	"encoding/binary"
	"io"
	"math"
)

// Writer serializes values into an in-memory little-endian buffer.
// The zero value is ready to use.
type Writer struct {
	buf []byte
}

// Bytes returns the encoded buffer. The slice aliases the Writer's internal
// storage and is invalidated by further writes.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of encoded bytes.
func (w *Writer) Len() int { return len(w.buf) }

// WriteInt32 appends v as 4 little-endian bytes.
func (w *Writer) WriteInt32(v int32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, uint32(v))
}

// WriteUint32 appends v as 4 little-endian bytes.
func (w *Writer) WriteUint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// WriteFloat32 appends the IEEE 754 bits of v as 4 little-endian bytes.
func (w *Writer) WriteFloat32(v float32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, math.Float32bits(v))
}

// WriteBool appends a single byte: 1 for true, 0 for false.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf = append(w.buf, 1)
	} else {
		w.buf = append(w.buf, 0)
	}
}

// WriteString appends a uint32 length prefix followed by the raw bytes of s.
func (w *Writer) WriteString(s string) {
	w.WriteUint32(uint32(len(s)))
	w.buf = append(w.buf, s...)
}

// Reader deserializes values from a little-endian buffer produced by Writer.
type Reader struct {
	buf []byte
	off int
	err error
}

// NewReader creates a Reader over b. The Reader does not copy b.
func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// Err returns the first error encountered, or nil. Once set, all further
// reads return zero values.
func (r *Reader) Err() error { return r.err }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.off+n > len(r.buf) {
		r.err = io.ErrUnexpectedEOF
		return nil
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

// Int32 reads 4 little-endian bytes as a signed integer.
func (r *Reader) Int32() int32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(b))
}

// Uint32 reads 4 little-endian bytes as an unsigned integer.
func (r *Reader) Uint32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// Float32 reads 4 little-endian bytes as an IEEE 754 float.
func (r *Reader) Float32() float32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

// Bool reads a single byte, reporting true for any non-zero value.
func (r *Reader) Bool() bool {
	b := r.take(1)
	if b == nil {
		return false
	}
	return b[0] != 0
}

// String reads a uint32 length prefix followed by that many bytes.
func (r *Reader) String() string {
	n := r.Uint32()
	if r.err != nil {
		return ""
	}
	if int(n) > r.Remaining() {
		r.err = io.ErrUnexpectedEOF
		return ""
	}
	return string(r.take(int(n)))
}
