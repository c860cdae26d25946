package searcher

import (
	"github.com/hupe1980/algokit/internal/blob"
	"github.com/hupe1980/algokit/typekind"
)

// searchExponential doubles a probe bound until it passes the key, then
// binary-searches the discovered bracket.
func searchExponential(buf blob.Buffer, key []byte, cmp typekind.CompareFunc) int {
	n := buf.Count()

	bound := 1
	for bound < n && cmp(buf.Elem(bound), key) < 0 {
		bound *= 2
	}

	low := bound / 2
	high := n
	if bound < n {
		high = bound + 1
	}

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
