package algokit

import (
	"github.com/hupe1980/algokit/searcher"
	"github.com/hupe1980/algokit/shuffler"
	"github.com/hupe1980/algokit/sorter"
	"github.com/hupe1980/algokit/typekind"
)

// Sort status codes.
const (
	SortOK                = 0
	SortInvalidInput      = -1
	SortUnknownType       = -2
	SortUnknownAlgorithm  = -3
	SortResourceExhausted = -4
)

// Search status codes. Non-negative results are element indices.
const (
	SearchNotFound         = -1
	SearchInvalidInput     = -2
	SearchUnknownType      = -3
	SearchUnknownAlgorithm = -4
)

// Shuffle status codes.
const (
	ShuffleOK               = 0
	ShuffleInvalidInput     = -1
	ShuffleUnknownType      = -2
	ShuffleUnknownAlgorithm = -3
)

// Sort sorts count elements of data in place.
//
// typeID selects the element type (e.g. "i32", "f64", "cstr"), algorithmID
// one of auto, quick, merge, heap, insertion, shell, bubble, counting,
// radix, and orderID "asc" (default) or "desc". A count of zero or one is
// a valid no-op.
func Sort(data []byte, count int, typeID, algorithmID, orderID string) int {
	if typeID == "" {
		return SortInvalidInput
	}
	return sortStatus(sorter.Sort(
		data,
		count,
		typekind.Parse(typeID),
		sorter.ParseAlgorithm(algorithmID),
		sorter.ParseOrder(orderID),
	))
}

// Search locates key among count elements of data and returns its index,
// or a negative status. algorithmID is one of auto, linear, binary, jump,
// interpolation, exponential, fibonacci; everything except auto/linear
// requires data to already be sorted per orderID, which is not verified.
func Search(data []byte, count int, key []byte, typeID, algorithmID, orderID string) int {
	if typeID == "" {
		return SearchInvalidInput
	}
	return searchStatus(searcher.Search(
		data,
		count,
		key,
		typekind.Parse(typeID),
		searcher.ParseAlgorithm(algorithmID),
		searcher.ParseOrder(orderID),
	))
}

// Shuffle permutes count elements of data in place. algorithmID is one of
// auto, fisher-yates, inside-out; modeID one of auto, seeded, secure. The
// seed is consulted only in seeded mode, where zero falls back to a
// time-derived seed.
func Shuffle(data []byte, count int, typeID, algorithmID, modeID string, seed uint64) int {
	if typeID == "" {
		return ShuffleInvalidInput
	}
	return shuffleStatus(shuffler.Shuffle(
		data,
		count,
		typekind.Parse(typeID),
		shuffler.ParseAlgorithm(algorithmID),
		shuffler.ParseMode(modeID),
		seed,
	))
}

// WidthOf returns the element byte width for a type identifier, or 0 for
// unrecognized or unsupported identifiers.
func WidthOf(typeID string) int {
	return typekind.Parse(typeID).Width()
}

// IsSupported reports whether the type identifier has a concrete element
// representation.
func IsSupported(typeID string) bool {
	return typekind.Parse(typeID).Supported()
}
