package algokit

import (
	"errors"
	"fmt"

	"github.com/hupe1980/algokit/searcher"
	"github.com/hupe1980/algokit/shuffler"
	"github.com/hupe1980/algokit/sorter"
)

var (
	// ErrInvalidInput indicates a nil buffer or key, a bad count, or an
	// empty type identifier.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownType indicates an unrecognized or unsupported type
	// identifier.
	ErrUnknownType = errors.New("unknown type")

	// ErrUnknownAlgorithm indicates an unrecognized algorithm identifier,
	// or one that is valid in general but unsupported for the resolved
	// type.
	ErrUnknownAlgorithm = errors.New("unknown or unsupported algorithm")

	// ErrNotFound indicates that a search key matched no element.
	ErrNotFound = errors.New("not found")

	// ErrResourceExhausted indicates a denied scratch-memory reservation.
	ErrResourceExhausted = errors.New("resource exhausted")
)

// translateSortError lifts sorter errors into the public error contract.
// The engine error stays reachable through errors.Unwrap.
func translateSortError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sorter.ErrInvalidInput):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	case errors.Is(err, sorter.ErrUnknownType):
		return fmt.Errorf("%w: %w", ErrUnknownType, err)
	case errors.Is(err, sorter.ErrUnknownAlgorithm), errors.Is(err, sorter.ErrUnsupportedWidth):
		return fmt.Errorf("%w: %w", ErrUnknownAlgorithm, err)
	case errors.Is(err, sorter.ErrResourceExhausted):
		return fmt.Errorf("%w: %w", ErrResourceExhausted, err)
	default:
		return err
	}
}

func translateSearchError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, searcher.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, searcher.ErrInvalidInput):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	case errors.Is(err, searcher.ErrUnknownType):
		return fmt.Errorf("%w: %w", ErrUnknownType, err)
	case errors.Is(err, searcher.ErrUnknownAlgorithm), errors.Is(err, searcher.ErrUnsupportedType):
		return fmt.Errorf("%w: %w", ErrUnknownAlgorithm, err)
	default:
		return err
	}
}

func translateShuffleError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, shuffler.ErrInvalidInput):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	case errors.Is(err, shuffler.ErrUnknownType):
		return fmt.Errorf("%w: %w", ErrUnknownType, err)
	case errors.Is(err, shuffler.ErrUnknownAlgorithm):
		return fmt.Errorf("%w: %w", ErrUnknownAlgorithm, err)
	default:
		return err
	}
}

// sortStatus collapses a sorter error into the sort status taxonomy.
func sortStatus(err error) int {
	switch {
	case err == nil:
		return SortOK
	case errors.Is(err, sorter.ErrUnknownType):
		return SortUnknownType
	case errors.Is(err, sorter.ErrUnknownAlgorithm), errors.Is(err, sorter.ErrUnsupportedWidth):
		return SortUnknownAlgorithm
	case errors.Is(err, sorter.ErrResourceExhausted):
		return SortResourceExhausted
	default:
		return SortInvalidInput
	}
}

// searchStatus collapses a searcher result into the search taxonomy.
func searchStatus(idx int, err error) int {
	switch {
	case err == nil:
		return idx
	case errors.Is(err, searcher.ErrNotFound):
		return SearchNotFound
	case errors.Is(err, searcher.ErrUnknownType):
		return SearchUnknownType
	case errors.Is(err, searcher.ErrUnknownAlgorithm), errors.Is(err, searcher.ErrUnsupportedType):
		return SearchUnknownAlgorithm
	default:
		return SearchInvalidInput
	}
}

// shuffleStatus collapses a shuffler error into the shuffle taxonomy.
func shuffleStatus(err error) int {
	switch {
	case err == nil:
		return ShuffleOK
	case errors.Is(err, shuffler.ErrUnknownType):
		return ShuffleUnknownType
	case errors.Is(err, shuffler.ErrUnknownAlgorithm):
		return ShuffleUnknownAlgorithm
	default:
		return ShuffleInvalidInput
	}
}
