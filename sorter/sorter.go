package sorter

import (
	"fmt"

	"github.com/hupe1980/algokit/internal/blob"
	"github.com/hupe1980/algokit/resource"
	"github.com/hupe1980/algokit/typekind"
)

// Algorithm selects the concrete sorting algorithm.
type Algorithm int

const (
	AlgorithmInvalid Algorithm = iota
	AlgorithmAuto
	AlgorithmQuick
	AlgorithmMerge
	AlgorithmHeap
	AlgorithmInsertion
	AlgorithmShell
	AlgorithmBubble
	AlgorithmCounting
	AlgorithmRadix
)

var algorithmNames = map[string]Algorithm{
	"auto":      AlgorithmAuto,
	"quick":     AlgorithmQuick,
	"merge":     AlgorithmMerge,
	"heap":      AlgorithmHeap,
	"insertion": AlgorithmInsertion,
	"shell":     AlgorithmShell,
	"bubble":    AlgorithmBubble,
	"counting":  AlgorithmCounting,
	"radix":     AlgorithmRadix,
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

// Order selects the sort direction.
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

// autoInsertionThreshold is the element count below which AlgorithmAuto
// prefers insertion sort.
const autoInsertionThreshold = 32

// defaultController caps scratch space when no controller is supplied, so a
// counting sort over a pathological value range fails with
// ErrResourceExhausted instead of exhausting the process.
var defaultController = resource.NewController(resource.Config{
	ScratchLimitBytes: 2 << 30,
})

type options struct {
	stable     bool
	controller *resource.Controller
}

// Option configures a single Sort call.
type Option func(*options)

// WithStable requests a stable sort. AlgorithmAuto honors it by selecting
// merge sort regardless of element count.
func WithStable(stable bool) Option {
	return func(o *options) {
		o.stable = stable
	}
}

// WithController overrides the scratch-memory controller for this call.
// Passing nil disables budgeting entirely.
func WithController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// Sort sorts count elements of the given kind in place.
//
// The checks run in a fixed sequence: input validation, type resolution,
// buffer length, algorithm resolution. A count of zero or one succeeds as
// a no-op once all checks pass.
func Sort(data []byte, count int, kind typekind.Kind, algo Algorithm, ord Order, opts ...Option) error {
	o := options{controller: defaultController}
	for _, opt := range opts {
		opt(&o)
	}

	if count < 0 || (data == nil && count > 0) {
		return ErrInvalidInput
	}

	width := kind.Width()
	if width == 0 {
		return ErrUnknownType
	}

	// The comparison sorts need a comparator; counting and radix work on
	// the unsigned representation alone. A missing comparator is a type
	// failure, not an algorithm failure.
	cmp := kind.Compare()
	if cmp == nil && algo >= AlgorithmAuto && algo <= AlgorithmBubble {
		return ErrUnknownType
	}

	buf, ok := blob.View(data, count, width)
	if !ok {
		return ErrInvalidInput
	}

	if algo < AlgorithmAuto || algo > AlgorithmRadix {
		return ErrUnknownAlgorithm
	}

	if count <= 1 {
		return nil
	}

	if ord == OrderDesc && cmp != nil {
		asc := cmp
		cmp = func(a, b []byte) int { return -asc(a, b) }
	}

	if algo == AlgorithmAuto {
		algo = chooseAuto(count, o.stable)
	}

	switch algo {
	case AlgorithmQuick:
		quickSort(buf, cmp)
	case AlgorithmMerge:
		return mergeSort(buf, cmp, o.controller)
	case AlgorithmHeap:
		heapSort(buf, cmp)
	case AlgorithmInsertion:
		insertionSort(buf, cmp)
	case AlgorithmShell:
		shellSort(buf, cmp)
	case AlgorithmBubble:
		bubbleSort(buf, cmp)
	case AlgorithmCounting:
		return countingSort(buf, ord, o.controller)
	case AlgorithmRadix:
		return radixSort(buf, ord, o.controller)
	}
	return nil
}

// chooseAuto is the one adaptive policy in the engine: stability overrides
// size, small inputs take insertion sort, everything else quicksort.
func chooseAuto(count int, stable bool) Algorithm {
	switch {
	case stable:
		return AlgorithmMerge
	case count < autoInsertionThreshold:
		return AlgorithmInsertion
	default:
		return AlgorithmQuick
	}
}
