package hivegen

import (
	"fmt"

	"github.com/joshuapare/hivedigger/internal/format"
	"github.com/joshuapare/hivedigger/pkg/types"
)

// Value appends a value record and its data, picking the storage Windows
// would use: inline up to 4 bytes, segmented above DBChunkSize on hives
// that support it, a single data cell otherwise.
func (h *Hive) Value(name string, typ types.RegType, data []byte) uint32 {
	switch {
	case len(data) <= format.VKInlineMax:
		return h.InlineValue(name, typ, data)
	case len(data) > format.DBChunkSize && h.minor >= format.DBMinMinorVersion:
		return h.BigValue(name, typ, data)
	default:
		return h.CellValue(name, typ, data)
	}
}

// InlineValue stores up to 4 bytes of data in the record's offset field.
func (h *Hive) InlineValue(name string, typ types.RegType, data []byte) uint32 {
	if len(data) > format.VKInlineMax {
		panic(fmt.Sprintf("hivegen: %d bytes do not fit inline", len(data)))
	}
	var field [4]byte
	copy(field[:], data)
	return h.VK(name, typ, uint32(len(data))|format.VKDataInlineBit, format.ReadU32(field[:], 0))
}

// CellValue stores data in a single data cell.
func (h *Hive) CellValue(name string, typ types.RegType, data []byte) uint32 {
	cell := h.Cell(data)
	return h.VK(name, typ, uint32(len(data)), cell)
}

// BigValue stores data as a db record. segments gives the length of each
// segment in order; without it data is cut into DBChunkSize pieces. Each
// segment cell's size prefix is exactly its length plus 4.
func (h *Hive) BigValue(name string, typ types.RegType, data []byte, segments ...int) uint32 {
	db := h.DB(data, segments...)
	return h.VK(name, typ, uint32(len(data)), db)
}

// DB appends the segments of data, their offset list, and the db record
// pointing at it, returning the db record's offset.
func (h *Hive) DB(data []byte, segments ...int) uint32 {
	if len(segments) == 0 {
		for rest := len(data); rest > 0; rest -= format.DBChunkSize {
			segments = append(segments, min(rest, format.DBChunkSize))
		}
	}
	offs := make([]uint32, 0, len(segments))
	pos := 0
	for _, n := range segments {
		if pos+n > len(data) {
			panic(fmt.Sprintf("hivegen: segments exceed %d bytes", len(data)))
		}
		offs = append(offs, h.ExactCell(data[pos:pos+n]))
		pos += n
	}
	list := h.ValueList(offs...)
	return h.RawDB(format.DBSignature, uint16(len(offs)), list)
}

// RawDB appends a db record with arbitrary fields.
func (h *Hive) RawDB(tag []byte, count uint16, list uint32) uint32 {
	p := make([]byte, format.DBHeaderSize+4)
	copy(p, tag)
	format.PutU16(p, format.DBCountOffset, count)
	format.PutU32(p, format.DBListOffset, list)
	return h.Cell(p)
}

// VK appends a value record with raw length and offset fields.
func (h *Hive) VK(name string, typ types.RegType, dataLen, dataOff uint32) uint32 {
	raw, compressed, err := format.EncodeName(name)
	if err != nil {
		panic(fmt.Sprintf("hivegen: encode %q: %v", name, err))
	}
	return h.RawVK(raw, compressed, typ, dataLen, dataOff)
}

// RawVK appends a value record with the given name bytes.
func (h *Hive) RawVK(name []byte, ascii bool, typ types.RegType, dataLen, dataOff uint32) uint32 {
	p := make([]byte, format.VKFixedHeaderSize+len(name))
	copy(p, format.VKSignature)
	format.PutU16(p, format.VKNameLenOffset, uint16(len(name)))
	format.PutU32(p, format.VKDataLenOffset, dataLen)
	format.PutU32(p, format.VKDataOffOffset, dataOff)
	format.PutU32(p, format.VKTypeOffset, uint32(typ))
	if ascii {
		format.PutU16(p, format.VKFlagsOffset, format.VKFlagASCIIName)
	}
	copy(p[format.VKFixedHeaderSize:], name)
	return h.Cell(p)
}
