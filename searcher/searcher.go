package searcher

import (
	"fmt"

	"github.com/hupe1980/algokit/internal/blob"
	"github.com/hupe1980/algokit/typekind"
)

// Algorithm selects the concrete search algorithm.
type Algorithm int

const (
	AlgorithmInvalid Algorithm = iota
	AlgorithmAuto
	AlgorithmLinear
	AlgorithmBinary
	AlgorithmJump
	AlgorithmInterpolation
	AlgorithmExponential
	AlgorithmFibonacci
)

var algorithmNames = map[string]Algorithm{
	"auto":          AlgorithmAuto,
	"linear":        AlgorithmLinear,
	"binary":        AlgorithmBinary,
	"jump":          AlgorithmJump,
	"interpolation": AlgorithmInterpolation,
	"exponential":   AlgorithmExponential,
	"fibonacci":     AlgorithmFibonacci,
}

// ParseAlgorithm resolves an algorithm identifier. The empty string selects
// AlgorithmAuto; unrecognized identifiers resolve to AlgorithmInvalid.
func ParseAlgorithm(algorithmID string) Algorithm {
	if algorithmID == "" {
		return AlgorithmAuto
	}
	return algorithmNames[algorithmID]
}

func (a Algorithm) String() string {
	for name, algo := range algorithmNames {
		if algo == a {
			return name
		}
	}
	return fmt.Sprintf("invalid(%d)", int(a))
}

// Order states how the buffer claims to be sorted.
type Order int

const (
	OrderAsc Order = iota
	OrderDesc
)

// ParseOrder resolves an order identifier. Everything except "desc" selects
// ascending order, the default.
func ParseOrder(orderID string) Order {
	if orderID == "desc" {
		return OrderDesc
	}
	return OrderAsc
}

func (o Order) String() string {
	if o == OrderDesc {
		return "desc"
	}
	return "asc"
}

// Search locates key within count elements of the given kind and returns
// its index. key must hold at least one element width of bytes.
func Search(data []byte, count int, key []byte, kind typekind.Kind, algo Algorithm, ord Order) (int, error) {
	if data == nil || key == nil || count <= 0 {
		return -1, ErrInvalidInput
	}

	width := kind.Width()
	cmp := kind.Compare()
	if width == 0 || cmp == nil {
		return -1, ErrUnknownType
	}

	buf, ok := blob.View(data, count, width)
	if !ok || len(key) < width {
		return -1, ErrInvalidInput
	}
	key = key[:width:width]

	if ord == OrderDesc {
		asc := cmp
		cmp = func(a, b []byte) int { return -asc(a, b) }
	}

	var idx int
	switch algo {
	case AlgorithmAuto, AlgorithmLinear:
		idx = searchLinear(buf, key, cmp)
	case AlgorithmBinary:
		idx = searchBinary(buf, key, cmp)
	case AlgorithmJump:
		idx = searchJump(buf, key, cmp)
	case AlgorithmInterpolation:
		if kind != typekind.I32 && kind != typekind.I64 {
			return -1, ErrUnsupportedType
		}
		idx = searchInterpolation(buf, key, kind, ord)
	case AlgorithmExponential:
		idx = searchExponential(buf, key, cmp)
	case AlgorithmFibonacci:
		idx = searchFibonacci(buf, key, cmp)
	default:
		return -1, ErrUnknownAlgorithm
	}

	if idx < 0 {
		return -1, ErrNotFound
	}
	return idx, nil
}
