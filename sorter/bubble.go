package sorter

import (
	"github.com/hupe1980/algokit/internal/blob"
	"github.com/hupe1980/algokit/typekind"
)

func bubbleSort(buf blob.Buffer, cmp typekind.CompareFunc) {
	n := buf.Count()
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if cmp(buf.Elem(j), buf.Elem(j+1)) > 0 {
				buf.Swap(j, j+1)
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
}
