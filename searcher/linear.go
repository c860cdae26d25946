package searcher

import (
	"github.com/hupe1980/algokit/internal/blob"
	"github.com/hupe1980/algokit/typekind"
)

// searchLinear scans exhaustively and needs no ordering precondition.
// It always returns the leftmost match.
func searchLinear(buf blob.Buffer, key []byte, cmp typekind.CompareFunc) int {
	for i := 0; i < buf.Count(); i++ {
		if cmp(buf.Elem(i), key) == 0 {
			return i
		}
	}
	return -1
}
