package sorter

import (
	"github.com/hupe1980/algokit/internal/blob"
	"github.com/hupe1980/algokit/resource"
)

// countingSort handles 1, 2, and 4 byte unsigned representations. The count
// table covers the full value range up to the observed maximum, so its size
// is reserved up front; huge value ranges fail cleanly before any mutation.
func countingSort(buf blob.Buffer, ord Order, ctrl *resource.Controller) error {
	switch buf.Width() {
	case 1, 2, 4:
	default:
		return ErrUnsupportedWidth
	}

	n := buf.Count()
	var maxVal uint64
	for i := 0; i < n; i++ {
		if v := blob.Uint(buf.Elem(i)); v > maxVal {
			maxVal = v
		}
	}

	tableBytes := (int64(maxVal) + 1) * 8
	if !ctrl.TryAcquireScratch(tableBytes) {
		return ErrResourceExhausted
	}
	defer ctrl.ReleaseScratch(tableBytes)

	counts := make([]uint64, maxVal+1)
	for i := 0; i < n; i++ {
		counts[blob.Uint(buf.Elem(i))]++
	}

	idx := 0
	for v := uint64(0); v <= maxVal; v++ {
		for c := counts[v]; c > 0; c-- {
			blob.PutUint(buf.Elem(idx), v)
			idx++
		}
	}

	if ord == OrderDesc {
		buf.Reverse()
	}
	return nil
}
