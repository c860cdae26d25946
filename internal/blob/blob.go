// Package blob provides the width-tagged byte-buffer view shared by the
// algorithm engines. A Buffer never owns its memory: it is a stride view
// over a caller-provided slice, mutated strictly in place.
package blob

import "encoding/binary"

// Buffer is a view of count contiguous elements of width bytes each.
type Buffer struct {
	data  []byte
	width int
	count int
}

// View wraps data as a buffer of count elements of width bytes.
// It reports false if the slice is too short to hold them. The division
// form keeps the capacity check exact for counts where count*width would
// overflow.
func View(data []byte, count, width int) (Buffer, bool) {
	if width <= 0 || count < 0 || count > len(data)/width {
		return Buffer{}, false
	}
	return Buffer{data: data, width: width, count: count}, true
}

// Count returns the number of elements in the view.
func (b Buffer) Count() int { return b.count }

// Width returns the element width in bytes.
func (b Buffer) Width() int { return b.width }

// Elem returns the raw bytes of element i.
func (b Buffer) Elem(i int) []byte {
	off := i * b.width
	return b.data[off : off+b.width : off+b.width]
}

// Swap exchanges elements i and j byte by byte.
func (b Buffer) Swap(i, j int) {
	if i == j {
		return
	}
	x, y := b.Elem(i), b.Elem(j)
	for k := range x {
		x[k], y[k] = y[k], x[k]
	}
}

// Set overwrites element i with src, which must hold width bytes.
func (b Buffer) Set(i int, src []byte) {
	copy(b.Elem(i), src)
}

// Move copies element src onto element dst within the buffer.
func (b Buffer) Move(dst, src int) {
	copy(b.Elem(dst), b.Elem(src))
}

// Reverse mirrors the element order in place.
func (b Buffer) Reverse() {
	for i, j := 0, b.count-1; i < j; i, j = i+1, j-1 {
		b.Swap(i, j)
	}
}

// Bytes returns the underlying storage covering all count elements.
func (b Buffer) Bytes() []byte {
	return b.data[:b.count*b.width]
}

// Uint decodes element bytes as an unsigned integer in native byte order.
// Widths 1, 2, 4, and 8 are meaningful; anything else decodes to 0.
func Uint(elem []byte) uint64 {
	switch len(elem) {
	case 1:
		return uint64(elem[0])
	case 2:
		return uint64(binary.NativeEndian.Uint16(elem))
	case 4:
		return uint64(binary.NativeEndian.Uint32(elem))
	case 8:
		return binary.NativeEndian.Uint64(elem)
	default:
		return 0
	}
}

// PutUint encodes v into elem in native byte order, truncating to the
// element width.
func PutUint(elem []byte, v uint64) {
	switch len(elem) {
	case 1:
		elem[0] = byte(v)
	case 2:
		binary.NativeEndian.PutUint16(elem, uint16(v))
	case 4:
		binary.NativeEndian.PutUint32(elem, uint32(v))
	case 8:
		binary.NativeEndian.PutUint64(elem, v)
	}
}
