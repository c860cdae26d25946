package searcher

import (
	"github.com/hupe1980/algokit/internal/blob"
	"github.com/hupe1980/algokit/typekind"
)

// searchFibonacci brackets the key with Fibonacci numbers, needing neither
// division nor multiplication. The eliminated-prefix offset is a signed int
// starting at -1 so the first comparison at index 0 cannot underflow.
func searchFibonacci(buf blob.Buffer, key []byte, cmp typekind.CompareFunc) int {
	n := buf.Count()

	fib2, fib1 := 0, 1 // F(m-2), F(m-1)
	fib := fib2 + fib1 // F(m), smallest Fibonacci number >= n
	for fib < n {
		fib2 = fib1
		fib1 = fib
		fib = fib2 + fib1
	}

	offset := -1
	for fib > 1 {
		i := offset + fib2
		if i > n-1 {
			i = n - 1
		}
		c := cmp(buf.Elem(i), key)
		switch {
		case c < 0:
			fib = fib1
			fib1 = fib2
			fib2 = fib - fib1
			offset = i
		case c > 0:
			fib = fib2
			fib1 = fib1 - fib2
			fib2 = fib - fib1
		default:
			return i
		}
	}

	if fib1 != 0 && offset+1 < n && cmp(buf.Elem(offset+1), key) == 0 {
		return offset + 1
	}
	return -1
}
