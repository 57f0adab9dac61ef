package format

import "bytes"

// HBIN describes a hive bin header (see the table in consts.go). Only the
// first bin's timestamp is meaningful.
type HBIN struct {
	Offset       uint32 // relative to 0x1000
	Size         uint32
	TimestampRaw uint64
}

// DecodeHBINHeader validates and decodes the 0x20-byte bin header in b.
func DecodeHBINHeader(b []byte) (HBIN, error) {
	if len(b) >= len(HBINSignature) && !bytes.Equal(b[:len(HBINSignature)], HBINSignature) {
		return HBIN{}, badSignature("hbin", b[:len(HBINSignature)])
	}
	if len(b) < HBINHeaderSize {
		return HBIN{}, truncated("hbin", len(b), HBINHeaderSize)
	}
	return HBIN{
		Offset:       ReadU32(b, HBINFileOffsetField),
		Size:         ReadU32(b, HBINSizeOffset),
		TimestampRaw: ReadU64(b, HBINTimeStampOffset),
	}, nil
}

// Aligned reports whether the bin size is a non-zero multiple of 4 KiB.
func (h HBIN) Aligned() bool {
	return h.Size != 0 && h.Size%HBINAlignment == 0
}
