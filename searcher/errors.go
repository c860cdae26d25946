package searcher

import "errors"

var (
	// ErrNotFound is returned when the key matches no element. It is
	// disjoint from every validation failure below.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned for a nil buffer or key, a zero count,
	// or an undersized buffer.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownType is returned when the kind has no width or no
	// comparator.
	ErrUnknownType = errors.New("unknown type")

	// ErrUnknownAlgorithm is returned for an unrecognized algorithm.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrUnsupportedType is returned when the algorithm is valid in
	// general but not implemented for the resolved kind, such as
	// interpolation search outside i32/i64.
	ErrUnsupportedType = errors.New("algorithm unsupported for type")
)
