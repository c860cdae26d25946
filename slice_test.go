package algokit

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/algokit/searcher"
	"github.com/hupe1980/algokit/shuffler"
	"github.com/hupe1980/algokit/sorter"
)

func TestSortSlice(t *testing.T) {
	t.Run("Int32", func(t *testing.T) {
		s := []int32{3, -1, 4, 1, -5}
		require.NoError(t, SortSlice(s, sorter.AlgorithmQuick, sorter.OrderAsc))
		assert.Equal(t, []int32{-5, -1, 1, 3, 4}, s)
	})

	t.Run("Strings", func(t *testing.T) {
		s := []string{"pear", "apple", "fig", "banana"}
		require.NoError(t, SortSlice(s, sorter.AlgorithmMerge, sorter.OrderAsc))
		assert.Equal(t, []string{"apple", "banana", "fig", "pear"}, s)
	})

	t.Run("StringsDesc", func(t *testing.T) {
		s := []string{"pear", "apple", "fig"}
		require.NoError(t, SortSlice(s, sorter.AlgorithmHeap, sorter.OrderDesc))
		assert.Equal(t, []string{"pear", "fig", "apple"}, s)
	})

	t.Run("Uint", func(t *testing.T) {
		s := []uint{9, 0, 5, 2}
		require.NoError(t, SortSlice(s, sorter.AlgorithmAuto, sorter.OrderAsc))
		assert.Equal(t, []uint{0, 2, 5, 9}, s)
	})

	t.Run("Bool", func(t *testing.T) {
		s := []bool{true, false, true, false}
		require.NoError(t, SortSlice(s, sorter.AlgorithmInsertion, sorter.OrderAsc))
		assert.Equal(t, []bool{false, false, true, true}, s)
	})

	t.Run("Float64", func(t *testing.T) {
		s := []float64{2.5, -0.5, 1.25}
		require.NoError(t, SortSlice(s, sorter.AlgorithmShell, sorter.OrderDesc))
		assert.Equal(t, []float64{2.5, 1.25, -0.5}, s)
	})

	t.Run("EmptyAndSingle", func(t *testing.T) {
		require.NoError(t, SortSlice([]int32{}, sorter.AlgorithmQuick, sorter.OrderAsc))
		require.NoError(t, SortSlice([]int32{7}, sorter.AlgorithmQuick, sorter.OrderAsc))
	})

	t.Run("UnknownAlgorithm", func(t *testing.T) {
		err := SortSlice([]int32{2, 1}, sorter.AlgorithmInvalid, sorter.OrderAsc)
		assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	})
}

func TestSearchSlice(t *testing.T) {
	t.Run("Int64", func(t *testing.T) {
		s := []int64{-9, 0, 8, 100}
		idx, err := SearchSlice(s, int64(8), searcher.AlgorithmBinary, searcher.OrderAsc)
		require.NoError(t, err)
		assert.Equal(t, 2, idx)
	})

	t.Run("Strings", func(t *testing.T) {
		s := []string{"apple", "banana", "fig", "pear"}
		idx, err := SearchSlice(s, "fig", searcher.AlgorithmBinary, searcher.OrderAsc)
		require.NoError(t, err)
		assert.Equal(t, 2, idx)

		idx, err = SearchSlice(s, "grape", searcher.AlgorithmBinary, searcher.OrderAsc)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, -1, idx)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := SearchSlice([]int32{}, int32(1), searcher.AlgorithmLinear, searcher.OrderAsc)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestShuffleSlice(t *testing.T) {
	input := []uint16{1, 2, 3, 4, 5, 6, 7, 8, 9}

	a := slices.Clone(input)
	b := slices.Clone(input)
	require.NoError(t, ShuffleSlice(a, shuffler.AlgorithmFisherYates, shuffler.ModeSeeded, 77))
	require.NoError(t, ShuffleSlice(b, shuffler.AlgorithmFisherYates, shuffler.ModeSeeded, 77))

	assert.Equal(t, a, b)
	assert.ElementsMatch(t, input, a)
}

func TestSortSearchRoundTrip(t *testing.T) {
	s := []float32{5.5, -1, 3.25, 0, 9}
	require.NoError(t, SortSlice(s, sorter.AlgorithmAuto, sorter.OrderAsc))

	for want, v := range s {
		idx, err := SearchSlice(s, v, searcher.AlgorithmBinary, searcher.OrderAsc)
		require.NoError(t, err)
		assert.Equal(t, want, idx)
	}
}
