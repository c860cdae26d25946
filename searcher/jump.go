package searcher

import (
	"math"

	"github.com/hupe1980/algokit/internal/blob"
	"github.com/hupe1980/algokit/typekind"
)

// searchJump probes the end of each sqrt(n)-sized block and falls back to a
// linear scan inside the block that brackets the key.
func searchJump(buf blob.Buffer, key []byte, cmp typekind.CompareFunc) int {
	n := buf.Count()
	stride := int(math.Sqrt(float64(n)))
	step := stride
	prev := 0

	for prev < n {
		probe := n - 1
		if step < n {
			probe = step - 1
		}
		if cmp(buf.Elem(probe), key) >= 0 {
			break
		}
		prev = step
		step += stride
		if prev >= n {
			return -1
		}
	}

	for i := prev; i < n && i < step; i++ {
		if cmp(buf.Elem(i), key) == 0 {
			return i
		}
	}
	return -1
}
