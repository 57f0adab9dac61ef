package hive

import (
	"fmt"

	"github.com/joshuapare/hivedigger/internal/format"
	"github.com/joshuapare/hivedigger/pkg/types"
)

// Cell is a decoded cell size prefix.
//
//	int32  size     // NEGATIVE = allocated, POSITIVE = free
//	...    payload
type Cell struct {
	// Offset is the cell's position relative to the first hive bin.
	Offset uint32
	format.CellHeader
}

// Abs returns the absolute file offset of the size prefix.
func (c Cell) Abs() int64 { return Abs(c.Offset) }

// PayloadAbs returns the absolute file offset of the first payload byte.
func (c Cell) PayloadAbs() int64 { return c.Abs() + format.CellHeaderSize }

// LoadCell decodes the size prefix of the cell at rel. Free cells are
// returned as-is; callers only follow offsets the hive handed them.
func LoadCell(src Source, rel uint32) (Cell, error) {
	b, err := ReadSpan(src, Abs(rel), format.CellHeaderSize, "cell header")
	if err != nil {
		return Cell{}, err
	}
	h, err := format.DecodeCellHeader(b)
	if err != nil {
		return Cell{}, fmt.Errorf("cell %#x: %w", rel, err)
	}
	return Cell{Offset: rel, CellHeader: h}, nil
}

// LoadRecord loads the cell at rel and reads the first need bytes of its
// payload. A cell too small to hold need bytes is MalformedRecord.
func LoadRecord(src Source, rel uint32, need int, what string) (Cell, []byte, error) {
	c, err := LoadCell(src, rel)
	if err != nil {
		return Cell{}, nil, fmt.Errorf("%s: %w", what, err)
	}
	if c.PayloadSize() < int64(need) {
		return Cell{}, nil, types.Errorf(types.ErrKindMalformedRecord,
			"%s at %#x: cell size %d cannot hold %d-byte record", what, rel, c.Size(), need)
	}
	b, err := ReadSpan(src, c.PayloadAbs(), int64(need), what)
	if err != nil {
		return Cell{}, nil, err
	}
	return c, b, nil
}
