package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddOverflowSafe(t *testing.T) {
	sum, ok := AddOverflowSafe(10, 5)
	require.True(t, ok)
	require.Equal(t, int64(15), sum)

	_, ok = AddOverflowSafe(math.MaxInt64, 1)
	require.False(t, ok, "expected overflow when adding to MaxInt64")

	_, ok = AddOverflowSafe(math.MinInt64, -1)
	require.False(t, ok, "expected underflow when subtracting from MinInt64")
}

func TestMulOverflowSafe(t *testing.T) {
	p, ok := MulOverflowSafe(0xFFFF, 8)
	require.True(t, ok)
	require.Equal(t, int64(0xFFFF*8), p)

	p, ok = MulOverflowSafe(0, math.MaxInt64)
	require.True(t, ok)
	require.Zero(t, p)

	_, ok = MulOverflowSafe(math.MaxInt64/2+1, 2)
	require.False(t, ok)

	_, ok = MulOverflowSafe(-1, 4)
	require.False(t, ok)
}

func TestCheckSpan(t *testing.T) {
	end, err := CheckSpan(100, 96, 4)
	require.NoError(t, err)
	require.Equal(t, int64(100), end)

	_, err = CheckSpan(100, 97, 4)
	require.ErrorContains(t, err, "bounds")

	_, err = CheckSpan(100, -1, 1)
	require.ErrorContains(t, err, "negative offset")

	_, err = CheckSpan(100, 1, -1)
	require.ErrorContains(t, err, "negative length")

	_, err = CheckSpan(math.MaxInt64, math.MaxInt64, 1)
	require.ErrorContains(t, err, "overflow")
}

func TestCheckListBounds(t *testing.T) {
	// 0xFFFF declared lf entries cannot fit in an 8 KiB image.
	_, err := CheckListBounds(8192, 0x1024, 0xFFFF, 8)
	require.Error(t, err)

	end, err := CheckListBounds(8192, 0x1024, 3, 8)
	require.NoError(t, err)
	require.Equal(t, int64(0x1024+24), end)

	_, err = CheckListBounds(8192, 0, math.MaxInt64, 8)
	require.ErrorContains(t, err, "overflow")
}

func TestSlice(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	got, ok := Slice(data, 1, 3)
	require.True(t, ok)
	require.Equal(t, []byte{1, 2, 3}, got)

	_, ok = Slice(data, 4, 2)
	require.False(t, ok, "Slice should fail when extending beyond len")

	_, ok = Slice(data, -1, 1)
	require.False(t, ok)

	_, ok = Slice(data, 1, -1)
	require.False(t, ok)
}
