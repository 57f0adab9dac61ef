package format

import "bytes"

// DBRecord is the header of a segmented ("big data") value:
//
//	Offset  Size  Field
//	0x00    2     'd' 'b'
//	0x02    2     Number of segments
//	0x04    4     Offset of the cell holding the segment offset list
//	0x08    4     Unknown (ignored)
//
// Each entry of the segment list is the offset of a data cell; the value is
// the concatenation of those cells' payloads in list order.
type DBRecord struct {
	SegmentCount      uint16
	SegmentListOffset uint32
}

// DecodeDBHeader decodes a db record from its cell payload.
func DecodeDBHeader(b []byte) (DBRecord, error) {
	if len(b) >= SignatureSize && !bytes.Equal(b[:SignatureSize], DBSignature) {
		return DBRecord{}, badSignature("db", b[:SignatureSize])
	}
	if len(b) < DBHeaderSize {
		return DBRecord{}, truncated("db", len(b), DBHeaderSize)
	}
	return DBRecord{
		SegmentCount:      ReadU16(b, DBCountOffset),
		SegmentListOffset: ReadU32(b, DBListOffset),
	}, nil
}
