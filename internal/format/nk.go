package format

import "bytes"

// NKHeader holds the fixed 0x4C-byte part of a key node. The name follows
// it immediately and is read separately:
//
//	Offset  Size  Field
//	0x00    2     'n' 'k'
//	0x02    2     Flags (0x20 => name stored one byte per char)
//	0x04    8     Last write time (FILETIME)
//	0x10    4     Parent cell offset
//	0x14    4     Number of subkeys
//	0x1C    4     Subkey list offset (0xFFFFFFFF => none)
//	0x24    4     Number of values
//	0x28    4     Value list offset (0xFFFFFFFF => none)
//	0x48    2     Name length in bytes
//	0x4A    2     Class name length
//	0x4C    n     Name bytes
type NKHeader struct {
	Flags            uint16
	LastWriteRaw     uint64
	ParentOffset     uint32
	SubkeyCount      uint32
	SubkeyListOffset uint32
	ValueCount       uint32
	ValueListOffset  uint32
	SecurityOffset   uint32
	ClassNameOffset  uint32
	NameLength       uint16
	ClassLength      uint16
}

// NameIsCompressed returns true when the name is stored in 8-bit form.
func (nk NKHeader) NameIsCompressed() bool {
	return nk.Flags&NKFlagCompressedName != 0
}

// HasSubkeyList reports whether SubkeyListOffset may be dereferenced.
func (nk NKHeader) HasSubkeyList() bool {
	return nk.SubkeyListOffset != InvalidOffset
}

// HasValueList reports whether ValueListOffset may be dereferenced.
func (nk NKHeader) HasValueList() bool {
	return nk.ValueListOffset != InvalidOffset
}

// DecodeNKHeader decodes the fixed part of an NK payload.
func DecodeNKHeader(b []byte) (NKHeader, error) {
	if len(b) >= SignatureSize && !bytes.Equal(b[:SignatureSize], NKSignature) {
		return NKHeader{}, badSignature("nk", b[:SignatureSize])
	}
	if len(b) < NKFixedHeaderSize {
		return NKHeader{}, truncated("nk", len(b), NKFixedHeaderSize)
	}
	return NKHeader{
		Flags:            ReadU16(b, NKFlagsOffset),
		LastWriteRaw:     ReadU64(b, NKLastWriteOffset),
		ParentOffset:     ReadU32(b, NKParentOffset),
		SubkeyCount:      ReadU32(b, NKSubkeyCountOffset),
		SubkeyListOffset: ReadU32(b, NKSubkeyListOffset),
		ValueCount:       ReadU32(b, NKValueCountOffset),
		ValueListOffset:  ReadU32(b, NKValueListOffset),
		SecurityOffset:   ReadU32(b, NKSecurityOffset),
		ClassNameOffset:  ReadU32(b, NKClassNameOffset),
		NameLength:       ReadU16(b, NKNameLenOffset),
		ClassLength:      ReadU16(b, NKClassLenOffset),
	}, nil
}
