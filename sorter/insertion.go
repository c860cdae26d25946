package sorter

import (
	"github.com/hupe1980/algokit/internal/blob"
	"github.com/hupe1980/algokit/typekind"
)

func insertionSort(buf blob.Buffer, cmp typekind.CompareFunc) {
	tmp := make([]byte, buf.Width())
	for i := 1; i < buf.Count(); i++ {
		copy(tmp, buf.Elem(i))
		j := i
		for j > 0 && cmp(tmp, buf.Elem(j-1)) < 0 {
			buf.Move(j, j-1)
			j--
		}
		buf.Set(j, tmp)
	}
}
