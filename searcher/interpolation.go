package searcher

import (
	"github.com/hupe1980/algokit/internal/blob"
	"github.com/hupe1980/algokit/typekind"
)

// searchInterpolation estimates the key position by linear interpolation
// between the bracket bounds. It works on the raw integer values, so it is
// limited to the i32 and i64 kinds and to uniformly distributed data for
// its O(log log n) expected step count.
//
// Two checks guarantee termination on degenerate input: a constant-valued
// bracket (value(low) == value(high)) is resolved immediately, and an
// estimate that lands outside the bracket aborts the search.
func searchInterpolation(buf blob.Buffer, key []byte, kind typekind.Kind, ord Order) int {
	val := func(elem []byte) int64 {
		if kind == typekind.I32 {
			return int64(int32(blob.Uint(elem)))
		}
		return int64(blob.Uint(elem))
	}

	k := val(key)
	desc := ord == OrderDesc
	low, high := 0, buf.Count()-1

	for low <= high {
		vlow, vhigh := val(buf.Elem(low)), val(buf.Elem(high))

		inRange := k >= vlow && k <= vhigh
		if desc {
			inRange = k <= vlow && k >= vhigh
		}
		if !inRange {
			break
		}

		if vlow == vhigh {
			if vlow == k {
				return low
			}
			break
		}

		pos := low + int(float64(high-low)*float64(k-vlow)/float64(vhigh-vlow))
		if pos < low || pos > high {
			break
		}

		v := val(buf.Elem(pos))
		if v == k {
			return pos
		}
		if (desc && v < k) || (!desc && v > k) {
			high = pos - 1
		} else {
			low = pos + 1
		}
	}
	return -1
}
