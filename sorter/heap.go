package sorter

import (
	"github.com/hupe1980/algokit/internal/blob"
	"github.com/hupe1980/algokit/typekind"
)

func heapSort(buf blob.Buffer, cmp typekind.CompareFunc) {
	n := buf.Count()
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(buf, n, i, cmp)
	}
	for i := n - 1; i > 0; i-- {
		buf.Swap(0, i)
		siftDown(buf, i, 0, cmp)
	}
}

func siftDown(buf blob.Buffer, n, root int, cmp typekind.CompareFunc) {
	largest := root
	left := 2*root + 1
	right := 2*root + 2

	if left < n && cmp(buf.Elem(left), buf.Elem(largest)) > 0 {
		largest = left
	}
	if right < n && cmp(buf.Elem(right), buf.Elem(largest)) > 0 {
		largest = right
	}
	if largest != root {
		buf.Swap(root, largest)
		siftDown(buf, n, largest, cmp)
	}
}
