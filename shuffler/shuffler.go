package shuffler

import (
	"fmt"
	"math/rand/v2"

	"github.com/hupe1980/algokit/internal/blob"
	"github.com/hupe1980/algokit/typekind"
)

// Algorithm selects the concrete shuffle algorithm.
type Algorithm int

const (
	AlgorithmInvalid Algorithm = iota
	AlgorithmAuto
	AlgorithmFisherYates
	AlgorithmInsideOut
)

var algorithmNames = map[string]Algorithm{
	"auto":         AlgorithmAuto,
	"fisher-yates": AlgorithmFisherYates,
	"inside-out":   AlgorithmInsideOut,
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

// Shuffle permutes count elements of the given kind in place using a
// generator seeded according to mode.
func Shuffle(data []byte, count int, kind typekind.Kind, algo Algorithm, mode Mode, seed uint64) error {
	if data == nil || count <= 0 {
		return ErrInvalidInput
	}

	width := kind.Width()
	if width == 0 {
		return ErrUnknownType
	}

	buf, ok := blob.View(data, count, width)
	if !ok {
		return ErrInvalidInput
	}

	rng := newRNG(deriveSeed(mode, seed))

	switch algo {
	case AlgorithmAuto, AlgorithmFisherYates:
		fisherYates(buf, rng)
	case AlgorithmInsideOut:
		insideOut(buf, rng)
	default:
		return ErrUnknownAlgorithm
	}
	return nil
}

// fisherYates walks from the last index down to 1, swapping each position
// with a uniformly chosen earlier-or-equal index.
func fisherYates(buf blob.Buffer, rng *rand.Rand) {
	for i := buf.Count() - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		buf.Swap(i, j)
	}
}

// insideOut walks upward, placing each element at a uniformly chosen
// position among the indices seen so far. A self-swap is a no-op.
func insideOut(buf blob.Buffer, rng *rand.Rand) {
	for i := 1; i < buf.Count(); i++ {
		j := rng.IntN(i + 1)
		if j != i {
			buf.Swap(i, j)
		}
	}
}
