package algokit

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort(t *testing.T) {
	t.Run("MergeDesc", func(t *testing.T) {
		vals := []int32{1, 4, 2, 8, 6}
		status := Sort(sliceBytes(vals), len(vals), "i32", "merge", "desc")
		assert.Equal(t, SortOK, status)
		assert.Equal(t, []int32{8, 6, 4, 2, 1}, vals)
	})

	t.Run("CountingAsc", func(t *testing.T) {
		vals := []uint8{4, 2, 5, 1, 3}
		status := Sort(vals, len(vals), "u8", "counting", "asc")
		assert.Equal(t, SortOK, status)
		assert.Equal(t, []uint8{1, 2, 3, 4, 5}, vals)
	})

	t.Run("AutoDefaults", func(t *testing.T) {
		vals := []int64{5, -2, 7}
		status := Sort(sliceBytes(vals), len(vals), "i64", "", "")
		assert.Equal(t, SortOK, status)
		assert.Equal(t, []int64{-2, 5, 7}, vals)
	})

	t.Run("EmptyIsNoOp", func(t *testing.T) {
		assert.Equal(t, SortOK, Sort(nil, 0, "i32", "quick", "asc"))
	})

	t.Run("Statuses", func(t *testing.T) {
		vals := []int32{2, 1}
		data := sliceBytes(vals)

		assert.Equal(t, SortInvalidInput, Sort(nil, 2, "i32", "quick", "asc"))
		assert.Equal(t, SortInvalidInput, Sort(nil, 2, "complex", "quick", "asc"))
		assert.Equal(t, SortInvalidInput, Sort(data, -1, "i32", "quick", "asc"))
		assert.Equal(t, SortInvalidInput, Sort(data, 2, "", "quick", "asc"))
		assert.Equal(t, SortUnknownType, Sort(data, 2, "complex", "quick", "asc"))
		assert.Equal(t, SortUnknownAlgorithm, Sort(data, 2, "i32", "bogo", "asc"))
		// Type resolution precedes algorithm resolution.
		assert.Equal(t, SortUnknownType, Sort(data, 2, "complex", "bogo", "asc"))
		// Width gate for non-comparison sorts reports as a bad algorithm
		// choice for the type.
		assert.Equal(t, SortUnknownAlgorithm, Sort(sliceBytes([]uint64{2, 1}), 2, "u64", "counting", "asc"))
	})
}

func TestSearch(t *testing.T) {
	vals := []int32{10, 20, 30, 40, 50}
	data := sliceBytes(vals)
	key := func(v int32) []byte { return sliceBytes([]int32{v}) }

	t.Run("BinaryHit", func(t *testing.T) {
		assert.Equal(t, 2, Search(data, len(vals), key(30), "i32", "binary", "asc"))
	})

	t.Run("LinearUnsorted", func(t *testing.T) {
		unsorted := []int32{5, 2, 9, 1, 7}
		assert.Equal(t, 2, Search(sliceBytes(unsorted), len(unsorted), key(9), "i32", "linear", "asc"))
	})

	t.Run("Interpolation", func(t *testing.T) {
		assert.Equal(t, 2, Search(data, len(vals), key(30), "i32", "interpolation", "asc"))
	})

	t.Run("NotFound", func(t *testing.T) {
		assert.Equal(t, SearchNotFound, Search(data, len(vals), key(35), "i32", "binary", "asc"))
	})

	t.Run("DescendingOrder", func(t *testing.T) {
		desc := []int32{50, 40, 30, 20, 10}
		assert.Equal(t, 3, Search(sliceBytes(desc), len(desc), key(20), "i32", "jump", "desc"))
	})

	t.Run("Statuses", func(t *testing.T) {
		assert.Equal(t, SearchInvalidInput, Search(nil, 5, key(30), "i32", "binary", "asc"))
		assert.Equal(t, SearchInvalidInput, Search(data, 0, key(30), "i32", "binary", "asc"))
		assert.Equal(t, SearchInvalidInput, Search(data, 5, key(30), "", "binary", "asc"))
		assert.Equal(t, SearchUnknownType, Search(data, 5, key(30), "matrix", "binary", "asc"))
		assert.Equal(t, SearchUnknownAlgorithm, Search(data, 5, key(30), "i32", "ternary", "asc"))
		// Interpolation is restricted to plain signed integer kinds wide
		// enough for its arithmetic.
		assert.Equal(t, SearchUnknownAlgorithm, Search(sliceBytes([]uint8{1, 2, 3}), 3, []byte{2}, "u8", "interpolation", "asc"))
	})
}

func TestShuffle(t *testing.T) {
	t.Run("SeededDeterministic", func(t *testing.T) {
		a := []int32{1, 2, 3, 4, 5, 6, 7, 8}
		b := slices.Clone(a)

		require.Equal(t, ShuffleOK, Shuffle(sliceBytes(a), len(a), "i32", "fisher-yates", "seeded", 42))
		require.Equal(t, ShuffleOK, Shuffle(sliceBytes(b), len(b), "i32", "fisher-yates", "seeded", 42))
		assert.Equal(t, a, b)
		assert.ElementsMatch(t, []int32{1, 2, 3, 4, 5, 6, 7, 8}, a)
	})

	t.Run("Statuses", func(t *testing.T) {
		vals := []int32{1, 2, 3}
		data := sliceBytes(vals)

		assert.Equal(t, ShuffleInvalidInput, Shuffle(nil, 3, "i32", "auto", "auto", 0))
		assert.Equal(t, ShuffleInvalidInput, Shuffle(data, 0, "i32", "auto", "auto", 0))
		assert.Equal(t, ShuffleInvalidInput, Shuffle(data, 3, "", "auto", "auto", 0))
		assert.Equal(t, ShuffleUnknownType, Shuffle(data, 3, "tensor", "auto", "auto", 0))
		assert.Equal(t, ShuffleUnknownAlgorithm, Shuffle(data, 3, "i32", "riffle", "auto", 0))
	})
}

func TestWidthOf(t *testing.T) {
	tests := []struct {
		typeID string
		want   int
	}{
		{"i8", 1},
		{"u8", 1},
		{"char", 1},
		{"bool", 1},
		{"i16", 2},
		{"i32", 4},
		{"f32", 4},
		{"i64", 8},
		{"u64", 8},
		{"f64", 8},
		{"hex", 8},
		{"datetime", 8},
		{"any", 0},
		{"null", 0},
		{"", 0},
		{"waffles", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WidthOf(tt.typeID), tt.typeID)
	}
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("i32"))
	assert.True(t, IsSupported("cstr"))
	assert.True(t, IsSupported("size"))
	assert.False(t, IsSupported("any"))
	assert.False(t, IsSupported("null"))
	assert.False(t, IsSupported("unknown"))
}
