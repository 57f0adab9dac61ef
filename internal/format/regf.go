package format

import (
	"bytes"

	"github.com/joshuapare/hivedigger/pkg/types"
)

// Header captures the REGF fields needed to validate a hive and find its
// root key. See the layout table in consts.go.
type Header struct {
	PrimarySequence   uint32
	SecondarySequence uint32
	LastWriteRaw      uint64
	MajorVersion      uint32
	MinorVersion      uint32
	Type              uint32
	Format            uint32
	RootCellOffset    uint32
	HiveBinsDataSize  uint32
	ClusteringFactor  uint32
	FileNameRaw       []byte
	Checksum          uint32
	ComputedChecksum  uint32
}

// ParseHeader validates the signature and extracts the header fields. The
// signature is checked before the length so a short file that is not a
// hive at all reports a signature problem rather than truncation.
func ParseHeader(b []byte) (Header, error) {
	if len(b) >= REGFSignatureSize && !bytes.Equal(b[:REGFSignatureSize], REGFSignature) {
		return Header{}, badSignature("regf header", b[:REGFSignatureSize])
	}
	if len(b) < HeaderSize {
		return Header{}, truncated("regf header", len(b), HeaderSize)
	}
	name := make([]byte, REGFFileNameSize)
	copy(name, b[REGFFileNameOffset:REGFFileNameOffset+REGFFileNameSize])
	return Header{
		PrimarySequence:   ReadU32(b, REGFPrimarySeqOffset),
		SecondarySequence: ReadU32(b, REGFSecondarySeqOffset),
		LastWriteRaw:      ReadU64(b, REGFTimeStampOffset),
		MajorVersion:      ReadU32(b, REGFMajorVersionOffset),
		MinorVersion:      ReadU32(b, REGFMinorVersionOffset),
		Type:              ReadU32(b, REGFTypeOffset),
		Format:            ReadU32(b, REGFFormatOffset),
		RootCellOffset:    ReadU32(b, REGFRootCellOffset),
		HiveBinsDataSize:  ReadU32(b, REGFDataSizeOffset),
		ClusteringFactor:  ReadU32(b, REGFClusterOffset),
		FileNameRaw:       name,
		Checksum:          ReadU32(b, REGFCheckSumOffset),
		ComputedChecksum:  HeaderChecksum(b),
	}, nil
}

// CheckFormat rejects every format other than direct memory load. Hives in
// any other layout are not walkable with bin-relative offsets.
func (h Header) CheckFormat() error {
	if h.Format != REGFFormatDirectMemoryLoad {
		return types.Errorf(types.ErrKindUnsupportedFormat,
			"regf header: format %d is not direct memory load", h.Format)
	}
	return nil
}

// ChecksumValid reports whether the stored checksum matches the header bytes.
func (h Header) ChecksumValid() bool {
	return h.Checksum == h.ComputedChecksum
}

// SequencesMatch reports whether the last write completed. A mismatch means
// the hive has pending log data that this reader does not replay.
func (h Header) SequencesMatch() bool {
	return h.PrimarySequence == h.SecondarySequence
}

// SupportsBigData reports whether values above DBChunkSize are segmented.
func (h Header) SupportsBigData() bool {
	return h.MinorVersion >= DBMinMinorVersion
}

// HeaderChecksum computes the XOR-32 checksum over the first 127 dwords,
// with the two values Windows reserves remapped.
func HeaderChecksum(b []byte) uint32 {
	if len(b) < REGFChecksumDwords*4 {
		return 0
	}
	var sum uint32
	for i := 0; i < REGFChecksumDwords; i++ {
		sum ^= ReadU32(b, i*4)
	}
	switch sum {
	case 0xFFFFFFFF:
		return 0xFFFFFFFE
	case 0:
		return 1
	}
	return sum
}
