package sorter

import (
	"github.com/hupe1980/algokit/internal/blob"
	"github.com/hupe1980/algokit/resource"
)

// radixSort is an LSD byte-wise radix sort over 1, 2, 4, or 8 byte unsigned
// representations. Digits come from the decoded value rather than raw
// storage order, so the result does not depend on host endianness.
func radixSort(buf blob.Buffer, ord Order, ctrl *resource.Controller) error {
	width := buf.Width()
	switch width {
	case 1, 2, 4, 8:
	default:
		return ErrUnsupportedWidth
	}

	n := buf.Count()
	scratch := int64(n) * int64(width)
	if !ctrl.TryAcquireScratch(scratch) {
		return ErrResourceExhausted
	}
	defer ctrl.ReleaseScratch(scratch)

	tmp := make([]byte, scratch)
	for pass := 0; pass < width; pass++ {
		shift := uint(8 * pass)

		var counts [256]int
		for i := 0; i < n; i++ {
			counts[byte(blob.Uint(buf.Elem(i))>>shift)]++
		}

		var pos [256]int
		total := 0
		for b := 0; b < 256; b++ {
			pos[b] = total
			total += counts[b]
		}

		for i := 0; i < n; i++ {
			b := byte(blob.Uint(buf.Elem(i)) >> shift)
			copy(tmp[pos[b]*width:(pos[b]+1)*width], buf.Elem(i))
			pos[b]++
		}

		copy(buf.Bytes(), tmp)
	}

	if ord == OrderDesc {
		buf.Reverse()
	}
	return nil
}
