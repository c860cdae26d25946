package sorter

import (
	"github.com/hupe1980/algokit/internal/blob"
	"github.com/hupe1980/algokit/typekind"
)

// shellSort uses Shell's original gap sequence: n/2, n/4, ..., 1.
func shellSort(buf blob.Buffer, cmp typekind.CompareFunc) {
	n := buf.Count()
	tmp := make([]byte, buf.Width())
	for gap := n / 2; gap > 0; gap /= 2 {
		for i := gap; i < n; i++ {
			copy(tmp, buf.Elem(i))
			j := i
			for j >= gap && cmp(tmp, buf.Elem(j-gap)) < 0 {
				buf.Move(j, j-gap)
				j -= gap
			}
			buf.Set(j, tmp)
		}
	}
}
