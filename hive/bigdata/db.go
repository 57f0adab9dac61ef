package bigdata

import (
	"fmt"

	"github.com/joshuapare/hivedigger/hive"
	"github.com/joshuapare/hivedigger/internal/buf"
	"github.com/joshuapare/hivedigger/internal/format"
	"github.com/joshuapare/hivedigger/pkg/types"
)

// Read reassembles every segment of the db record at rel.
func Read(src hive.Source, rel uint32) ([]byte, error) {
	return ReadN(src, rel, -1)
}

// ReadN is Read that stops once at least limit bytes have been collected.
// A negative limit reads every segment. The result is not trimmed.
func ReadN(src hive.Source, rel uint32, limit int64) ([]byte, error) {
	db, err := LoadHeader(src, rel)
	if err != nil {
		return nil, err
	}
	segs, err := Segments(src, db)
	if err != nil {
		return nil, fmt.Errorf("db at %#x: %w", rel, err)
	}

	var out []byte
	for i, seg := range segs {
		if limit >= 0 && int64(len(out)) >= limit {
			break
		}
		c, err := hive.LoadCell(src, seg)
		if err != nil {
			return nil, fmt.Errorf("db at %#x segment %d: %w", rel, i, err)
		}
		data, err := hive.ReadSpan(src, c.PayloadAbs(), c.PayloadSize(), "db segment")
		if err != nil {
			return nil, fmt.Errorf("db at %#x segment %d: %w", rel, i, err)
		}
		out = append(out, data...)
	}
	return out, nil
}

// LoadHeader decodes the db record in the cell at rel.
func LoadHeader(src hive.Source, rel uint32) (format.DBRecord, error) {
	_, b, err := hive.LoadRecord(src, rel, format.DBHeaderSize, "db")
	if err != nil {
		return format.DBRecord{}, err
	}
	db, err := format.DecodeDBHeader(b)
	if err != nil {
		return format.DBRecord{}, fmt.Errorf("db at %#x: %w", rel, err)
	}
	return db, nil
}

// Segments returns the segment cell offsets listed by db, in order.
func Segments(src hive.Source, db format.DBRecord) ([]uint32, error) {
	c, err := hive.LoadCell(src, db.SegmentListOffset)
	if err != nil {
		return nil, fmt.Errorf("segment list: %w", err)
	}
	count := int64(db.SegmentCount)
	if _, err := buf.CheckListBounds(src.Size(), c.PayloadAbs(), count, format.OffsetFieldSize); err != nil {
		return nil, types.Wrap(types.ErrKindTruncated,
			fmt.Sprintf("segment list at %#x: %d entries", db.SegmentListOffset, count), err)
	}
	raw, err := hive.ReadSpan(src, c.PayloadAbs(), count*format.OffsetFieldSize, "segment list")
	if err != nil {
		return nil, err
	}
	segs := make([]uint32, count)
	for i := range segs {
		segs[i] = format.ReadU32(raw, i*format.OffsetFieldSize)
	}
	return segs, nil
}
