package typekind

import (
	"encoding/binary"
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func i32Bytes(v int32) []byte {
	b := make([]byte, 4)
	binary.NativeEndian.PutUint32(b, uint32(v))
	return b
}

func i64Bytes(v int64) []byte {
	b := make([]byte, 8)
	binary.NativeEndian.PutUint64(b, uint64(v))
	return b
}

func u64Bytes(v uint64) []byte {
	b := make([]byte, 8)
	binary.NativeEndian.PutUint64(b, v)
	return b
}

func f64Bytes(v float64) []byte {
	return u64Bytes(math.Float64bits(v))
}

func strBytes(s *string) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(s)), unsafe.Sizeof(*s))
}

func TestCompareAvailability(t *testing.T) {
	ordered := []Kind{I8, I16, I32, I64, U8, U16, U32, U64, F32, F64, CStr, Char, Bool, Size}
	for _, k := range ordered {
		assert.NotNil(t, k.Compare(), k.String())
	}

	unordered := []Kind{Invalid, Hex, Oct, Bin, Datetime, Duration, Any, Null}
	for _, k := range unordered {
		assert.Nil(t, k.Compare(), k.String())
	}
}

func TestCompareSignedIntegers(t *testing.T) {
	cmp := I32.Compare()
	require.NotNil(t, cmp)

	assert.Negative(t, cmp(i32Bytes(-5), i32Bytes(3)))
	assert.Positive(t, cmp(i32Bytes(3), i32Bytes(-5)))
	assert.Zero(t, cmp(i32Bytes(7), i32Bytes(7)))
	assert.Negative(t, cmp(i32Bytes(math.MinInt32), i32Bytes(math.MaxInt32)))

	cmp64 := I64.Compare()
	assert.Negative(t, cmp64(i64Bytes(math.MinInt64), i64Bytes(0)))
	assert.Positive(t, cmp64(i64Bytes(1), i64Bytes(-1)))
}

func TestCompareUnsignedIntegers(t *testing.T) {
	cmp := U8.Compare()
	assert.Negative(t, cmp([]byte{1}, []byte{255}))
	assert.Positive(t, cmp([]byte{255}, []byte{1}))

	// The high bit must not read as a sign.
	cmp64 := U64.Compare()
	assert.Positive(t, cmp64(u64Bytes(math.MaxUint64), u64Bytes(1)))
}

func TestCompareFloats(t *testing.T) {
	cmp := F64.Compare()
	assert.Negative(t, cmp(f64Bytes(-0.5), f64Bytes(0.5)))
	assert.Positive(t, cmp(f64Bytes(2.25), f64Bytes(2.0)))
	assert.Zero(t, cmp(f64Bytes(1.5), f64Bytes(1.5)))

	// NaN never orders, so it falls through to equal. Documented limitation.
	assert.Zero(t, cmp(f64Bytes(math.NaN()), f64Bytes(42)))
	assert.Zero(t, cmp(f64Bytes(42), f64Bytes(math.NaN())))
	assert.Zero(t, cmp(f64Bytes(math.NaN()), f64Bytes(math.NaN())))
}

func TestCompareBool(t *testing.T) {
	cmp := Bool.Compare()
	assert.Negative(t, cmp([]byte{0}, []byte{1}))
	assert.Positive(t, cmp([]byte{1}, []byte{0}))
	assert.Zero(t, cmp([]byte{0}, []byte{0}))

	// Any non-zero byte counts as true.
	assert.Zero(t, cmp([]byte{2}, []byte{1}))
}

func TestCompareChar(t *testing.T) {
	cmp := Char.Compare()
	assert.Negative(t, cmp([]byte{'a'}, []byte{'b'}))
	assert.Zero(t, cmp([]byte{'x'}, []byte{'x'}))
}

func TestCompareCStr(t *testing.T) {
	cmp := CStr.Compare()

	apple, banana, empty := "apple", "banana", ""
	assert.Negative(t, cmp(strBytes(&apple), strBytes(&banana)))
	assert.Positive(t, cmp(strBytes(&banana), strBytes(&apple)))
	assert.Zero(t, cmp(strBytes(&apple), strBytes(&apple)))

	// The empty string stands in for an absent value and sorts first.
	assert.Negative(t, cmp(strBytes(&empty), strBytes(&apple)))
	assert.Zero(t, cmp(strBytes(&empty), strBytes(&empty)))
}

func TestCompareSize(t *testing.T) {
	cmp := Size.Compare()
	a := make([]byte, Size.Width())
	b := make([]byte, Size.Width())
	a[0] = 1 // native endian: lowest byte
	assert.Positive(t, cmp(a, b))
	assert.Negative(t, cmp(b, a))
}
