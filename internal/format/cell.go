package format

import "github.com/joshuapare/hivedigger/pkg/types"

// CellHeader is the signed size prefix in front of every cell.
//
//	Offset  Size  Description
//	0x00    4     Signed size. Negative => allocated, positive => free.
//	              The absolute value includes these 4 bytes.
//	0x04    ...   Payload.
type CellHeader struct {
	Raw int32
}

// DecodeCellHeader decodes the size prefix in b. A zero size or a magnitude
// smaller than the prefix itself cannot describe any cell.
func DecodeCellHeader(b []byte) (CellHeader, error) {
	if len(b) < CellHeaderSize {
		return CellHeader{}, truncated("cell header", len(b), CellHeaderSize)
	}
	c := CellHeader{Raw: ReadI32(b, 0)}
	if c.Size() < CellHeaderSize {
		return CellHeader{}, types.Errorf(types.ErrKindMalformedRecord,
			"cell header: size %d smaller than header", c.Raw)
	}
	return c, nil
}

// Allocated reports whether the cell is in use.
func (c CellHeader) Allocated() bool { return c.Raw < 0 }

// Size returns the total cell length including the prefix.
func (c CellHeader) Size() int64 {
	n := int64(c.Raw)
	if n < 0 {
		n = -n
	}
	return n
}

// PayloadSize returns the number of bytes after the prefix.
func (c CellHeader) PayloadSize() int64 {
	return c.Size() - CellHeaderSize
}
