package sorter

import (
	"github.com/hupe1980/algokit/internal/blob"
	"github.com/hupe1980/algokit/typekind"
)

func quickSort(buf blob.Buffer, cmp typekind.CompareFunc) {
	quickRange(buf, 0, buf.Count()-1, cmp)
}

func quickRange(buf blob.Buffer, low, high int, cmp typekind.CompareFunc) {
	if low >= high {
		return
	}
	p := quickPartition(buf, low, high, cmp)
	quickRange(buf, low, p-1, cmp)
	quickRange(buf, p+1, high, cmp)
}

// quickPartition uses the last element of the range as the pivot.
func quickPartition(buf blob.Buffer, low, high int, cmp typekind.CompareFunc) int {
	pivot := buf.Elem(high)
	i := low
	for j := low; j < high; j++ {
		if cmp(buf.Elem(j), pivot) < 0 {
			buf.Swap(i, j)
			i++
		}
	}
	buf.Swap(i, high)
	return i
}
