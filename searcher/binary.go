package searcher

import (
	"github.com/hupe1980/algokit/internal/blob"
	"github.com/hupe1980/algokit/typekind"
)

func searchBinary(buf blob.Buffer, key []byte, cmp typekind.CompareFunc) int {
	low, high := 0, buf.Count()
	for low < high {
		mid := low + (high-low)/2
		c := cmp(buf.Elem(mid), key)
		if c == 0 {
			return mid
		}
		if c < 0 {
			low = mid + 1
		} else {
			high = mid
		}
	}
	return -1
}
