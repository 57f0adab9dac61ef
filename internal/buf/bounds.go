// Package buf holds the overflow-safe arithmetic used to validate reads
// against the size of a hive image before they are issued.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int64.
func AddOverflowSafe(a, b int64) (int64, bool) {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return 0, false
	case b < 0 && a < math.MinInt64-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative values, returning ok = false
// when the product would overflow int64 or either operand is negative.
// This guards count * elementSize calculations for declared list lengths.
func MulOverflowSafe(a, b int64) (int64, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt64/b {
		return 0, false
	}
	return a * b, true
}

// CheckSpan validates that n bytes starting at off lie within [0, size).
// Returns the exclusive end offset.
func CheckSpan(size, off, n int64) (int64, error) {
	if off < 0 {
		return 0, fmt.Errorf("negative offset: %d", off)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative length: %d", n)
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok {
		return 0, fmt.Errorf("overflow: offset=%d + len=%d", off, n)
	}
	if end > size {
		return 0, fmt.Errorf("bounds: end=%d > size=%d", end, size)
	}
	return end, nil
}

// CheckListBounds validates that count elements of elementSize bytes starting
// at off fit within size. A hostile count can only ever cost the reads it
// declares if those reads are first proven to stay inside the image:
//
//	end, err := buf.CheckListBounds(src.Size(), listOff, int64(count), 8)
//	if err != nil {
//	    return types.Wrap(types.ErrKindTruncated, "lf list", err)
//	}
func CheckListBounds(size, off, count, elementSize int64) (int64, error) {
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if elementSize < 0 {
		return 0, fmt.Errorf("negative element size: %d", elementSize)
	}
	total, ok := MulOverflowSafe(count, elementSize)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * elemSize=%d", count, elementSize)
	}
	return CheckSpan(size, off, total)
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if _, err := CheckSpan(int64(len(b)), int64(off), int64(n)); err != nil {
		return nil, false
	}
	return b[off : off+n], true
}
