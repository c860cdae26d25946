package algokit

import (
	"unsafe"

	"github.com/hupe1980/algokit/searcher"
	"github.com/hupe1980/algokit/shuffler"
	"github.com/hupe1980/algokit/sorter"
	"github.com/hupe1980/algokit/typekind"
)

// Element enumerates the Go types the typed facade maps onto the registry.
// byte and rune alias uint8 and int32 and are covered by those entries;
// uint maps to the native-width "size" kind and string to "cstr".
type Element interface {
	int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | bool | uint | string
}

func kindOf[T Element]() typekind.Kind {
	var z T
	switch any(z).(type) {
	case int8:
		return typekind.I8
	case int16:
		return typekind.I16
	case int32:
		return typekind.I32
	case int64:
		return typekind.I64
	case uint8:
		return typekind.U8
	case uint16:
		return typekind.U16
	case uint32:
		return typekind.U32
	case uint64:
		return typekind.U64
	case float32:
		return typekind.F32
	case float64:
		return typekind.F64
	case bool:
		return typekind.Bool
	case uint:
		return typekind.Size
	case string:
		return typekind.CStr
	default:
		return typekind.Invalid
	}
}

// sliceBytes views the slice's backing array as raw element bytes. The
// caller must keep the slice alive for the duration of the engine call.
func sliceBytes[T Element](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var z T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(z)))
}

// SortSlice sorts a Go slice in place through the byte-buffer engine.
// An empty or single-element slice is a no-op.
func SortSlice[T Element](s []T, algo sorter.Algorithm, ord sorter.Order, opts ...sorter.Option) error {
	if len(s) <= 1 {
		return nil
	}
	return translateSortError(sorter.Sort(sliceBytes(s), len(s), kindOf[T](), algo, ord, opts...))
}

// SearchSlice locates key in a Go slice and returns its index. The same
// sortedness preconditions as Search apply per algorithm.
func SearchSlice[T Element](s []T, key T, algo searcher.Algorithm, ord searcher.Order) (int, error) {
	keyBuf := [1]T{key}
	idx, err := searcher.Search(sliceBytes(s), len(s), sliceBytes(keyBuf[:]), kindOf[T](), algo, ord)
	if err != nil {
		return -1, translateSearchError(err)
	}
	return idx, nil
}

// ShuffleSlice permutes a Go slice in place through the byte-buffer engine.
func ShuffleSlice[T Element](s []T, algo shuffler.Algorithm, mode shuffler.Mode, seed uint64) error {
	if len(s) <= 1 {
		return nil
	}
	return translateShuffleError(shuffler.Shuffle(sliceBytes(s), len(s), kindOf[T](), algo, mode, seed))
}
