package typekind

import (
	"encoding/binary"
	"math"
	"strings"
	"unsafe"
)

// CompareFunc is an ascending three-way comparator over two raw elements.
// Both slices hold exactly Width bytes of the kind's representation.
// Descending order is a sign flip applied by the calling engine, never by
// the comparator itself.
type CompareFunc func(a, b []byte) int

// Compare returns the ascending comparator for the kind, or nil for kinds
// without an implemented total order (the integer aliases, any, null).
func (k Kind) Compare() CompareFunc {
	switch k {
	case I8:
		return compareI8
	case I16:
		return compareI16
	case I32:
		return compareI32
	case I64:
		return compareI64
	case U8:
		return compareU8
	case U16:
		return compareU16
	case U32:
		return compareU32
	case U64:
		return compareU64
	case F32:
		return compareF32
	case F64:
		return compareF64
	case CStr:
		return compareCStr
	case Char:
		return compareChar
	case Bool:
		return compareBool
	case Size:
		return compareSize
	default:
		return nil
	}
}

func order[T int64 | uint64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareI8(a, b []byte) int {
	return order(int64(int8(a[0])), int64(int8(b[0])))
}

func compareI16(a, b []byte) int {
	return order(int64(int16(binary.NativeEndian.Uint16(a))), int64(int16(binary.NativeEndian.Uint16(b))))
}

func compareI32(a, b []byte) int {
	return order(int64(int32(binary.NativeEndian.Uint32(a))), int64(int32(binary.NativeEndian.Uint32(b))))
}

func compareI64(a, b []byte) int {
	return order(int64(binary.NativeEndian.Uint64(a)), int64(binary.NativeEndian.Uint64(b)))
}

func compareU8(a, b []byte) int {
	return order(uint64(a[0]), uint64(b[0]))
}

func compareU16(a, b []byte) int {
	return order(uint64(binary.NativeEndian.Uint16(a)), uint64(binary.NativeEndian.Uint16(b)))
}

func compareU32(a, b []byte) int {
	return order(uint64(binary.NativeEndian.Uint32(a)), uint64(binary.NativeEndian.Uint32(b)))
}

func compareU64(a, b []byte) int {
	return order(binary.NativeEndian.Uint64(a), binary.NativeEndian.Uint64(b))
}

// Float comparators use direct < and > only. NaN compares as neither, so it
// falls through to equal; a documented limitation of the registry.
func compareF32(a, b []byte) int {
	va := math.Float32frombits(binary.NativeEndian.Uint32(a))
	vb := math.Float32frombits(binary.NativeEndian.Uint32(b))
	switch {
	case va < vb:
		return -1
	case va > vb:
		return 1
	default:
		return 0
	}
}

func compareF64(a, b []byte) int {
	va := math.Float64frombits(binary.NativeEndian.Uint64(a))
	vb := math.Float64frombits(binary.NativeEndian.Uint64(b))
	switch {
	case va < vb:
		return -1
	case va > vb:
		return 1
	default:
		return 0
	}
}

func compareChar(a, b []byte) int {
	return order(uint64(a[0]), uint64(b[0]))
}

func compareBool(a, b []byte) int {
	va, vb := uint64(0), uint64(0)
	if a[0] != 0 {
		va = 1
	}
	if b[0] != 0 {
		vb = 1
	}
	return order(va, vb)
}

func compareSize(a, b []byte) int {
	if sizeWidth == 4 {
		return order(uint64(binary.NativeEndian.Uint32(a)), uint64(binary.NativeEndian.Uint32(b)))
	}
	return order(binary.NativeEndian.Uint64(a), binary.NativeEndian.Uint64(b))
}

// compareCStr reinterprets the element bytes as Go string headers. The bytes
// must come from the backing array of a live []string so the headers stay
// valid for the duration of the call.
func compareCStr(a, b []byte) int {
	sa := *(*string)(unsafe.Pointer(&a[0]))
	sb := *(*string)(unsafe.Pointer(&b[0]))
	return strings.Compare(sa, sb)
}
