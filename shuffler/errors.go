package shuffler

import "errors"

var (
	// ErrInvalidInput is returned for a nil or undersized buffer or a
	// non-positive count.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownType is returned when the kind has no width.
	ErrUnknownType = errors.New("unknown type")

	// ErrUnknownAlgorithm is returned for an unrecognized algorithm.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)
