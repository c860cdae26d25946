package sorter

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/algokit/typekind"
)

func FuzzSortI32(f *testing.F) {
	f.Add([]byte{}, uint8(1))
	f.Add(encodeI32([]int32{3, 1, 2}), uint8(1))
	f.Add(encodeI32([]int32{-7, 0, -7, 9}), uint8(3))

	f.Fuzz(func(t *testing.T, raw []byte, algoByte uint8) {
		algo := Algorithm(algoByte)
		if algo < AlgorithmQuick || algo > AlgorithmBubble {
			t.Skip()
		}

		count := len(raw) / 4
		data := slices.Clone(raw[:count*4])

		require.NoError(t, Sort(data, count, typekind.I32, algo, OrderAsc))

		want := decodeI32(slices.Clone(raw[:count*4]))
		slices.Sort(want)
		assert.Equal(t, want, decodeI32(data))
	})
}
