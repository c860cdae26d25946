package sorter

import "errors"

var (
	// ErrInvalidInput is returned for a nil or undersized buffer.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownType is returned when the kind has no width, or no
	// comparator while the algorithm needs one.
	ErrUnknownType = errors.New("unknown type")

	// ErrUnknownAlgorithm is returned for an unrecognized algorithm.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrUnsupportedWidth is returned when counting or radix sort is asked
	// to handle an element width outside its fixed set.
	ErrUnsupportedWidth = errors.New("algorithm does not support element width")

	// ErrResourceExhausted is returned when a scratch reservation is denied.
	// The buffer is left unmodified.
	ErrResourceExhausted = errors.New("scratch memory limit exceeded")
)
