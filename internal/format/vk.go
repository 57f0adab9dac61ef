package format

import "bytes"

// VKHeader holds the fixed 0x14-byte part of a value record.
//
//	Offset  Size  Field
//	0x00    2     'v' 'k'
//	0x02    2     Name length in bytes (0 => default value)
//	0x04    4     Data length, bit 31 => inline
//	0x08    4     Data offset, or the payload itself when inline
//	0x0C    4     Registry type
//	0x10    2     Flags (0x1 => name stored one byte per char)
//	0x12    2     Spare
//	0x14    n     Name bytes
type VKHeader struct {
	NameLength uint16
	DataLength uint32
	DataOffset uint32
	Type       uint32
	Flags      uint16
}

// NameIsASCII reports whether the name is stored as one byte per character.
func (vk VKHeader) NameIsASCII() bool {
	return vk.Flags&VKFlagASCIIName != 0
}

// DataInline reports whether the data is stored within the DataOffset field.
func (vk VKHeader) DataInline() bool {
	return vk.DataLength&VKDataInlineBit != 0
}

// Length returns the data length with the inline bit cleared.
func (vk VKHeader) Length() uint32 {
	return vk.DataLength & VKDataLengthMask
}

// DecodeVKHeader decodes the fixed part of a VK payload.
func DecodeVKHeader(b []byte) (VKHeader, error) {
	if len(b) >= SignatureSize && !bytes.Equal(b[:SignatureSize], VKSignature) {
		return VKHeader{}, badSignature("vk", b[:SignatureSize])
	}
	if len(b) < VKFixedHeaderSize {
		return VKHeader{}, truncated("vk", len(b), VKFixedHeaderSize)
	}
	return VKHeader{
		NameLength: ReadU16(b, VKNameLenOffset),
		DataLength: ReadU32(b, VKDataLenOffset),
		DataOffset: ReadU32(b, VKDataOffOffset),
		Type:       ReadU32(b, VKTypeOffset),
		Flags:      ReadU16(b, VKFlagsOffset),
	}, nil
}
