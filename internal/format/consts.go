// Package format houses low-level decoders for the Windows Registry hive file
// format. Every decoder works on a byte slice holding exactly one fixed-size
// header, checks its magic, and returns a plain value. Reading those bytes
// from the file, and following the offsets they contain, is the job of the
// packages above this one.
package format

var (
	// REGFSignature is the four-byte signature at the start of every hive file.
	REGFSignature = []byte{'r', 'e', 'g', 'f'}

	// HBINSignature is the four-byte signature at the beginning of each hive bin.
	HBINSignature = []byte{'h', 'b', 'i', 'n'}

	// NKSignature identifies an NK (key node) cell payload.
	NKSignature = []byte{'n', 'k'}

	// VKSignature identifies a VK (value key) cell payload.
	VKSignature = []byte{'v', 'k'}

	// LISignature, LFSignature and LHSignature identify leaf subkey lists.
	// LF/LH entries carry a 4-byte hint or hash after each NK offset; LI
	// entries are bare offsets.
	LISignature = []byte{'l', 'i'}
	LFSignature = []byte{'l', 'f'}
	LHSignature = []byte{'l', 'h'}

	// RISignature identifies an RI (index root) list whose entries point at
	// further leaf lists.
	RISignature = []byte{'r', 'i'}

	// DBSignature identifies a big data record for segmented values.
	DBSignature = []byte{'d', 'b'}
)

const (
	// HeaderSize is the size of the REGF header in bytes. Hive bins start
	// immediately after it, and every cell offset stored in the hive is
	// relative to this point.
	HeaderSize = 4096

	// HiveDataBase is the absolute file offset of the first hive bin.
	HiveDataBase = HeaderSize

	// HBINHeaderSize is the size of the HBIN header in bytes.
	HBINHeaderSize = 0x20

	// HBINAlignment is the required alignment of hive bins.
	HBINAlignment = 0x1000

	// CellHeaderSize is the signed size prefix in front of every cell.
	CellHeaderSize = 4

	// CellAlignment is the required alignment of cells within HBINs.
	CellAlignment = 8

	// SignatureSize is the size of every two-byte record tag.
	SignatureSize = 2

	// OffsetFieldSize is the size of a cell offset (HCELL_INDEX).
	OffsetFieldSize = 4

	// InvalidOffset marks an absent list or cell reference.
	InvalidOffset = 0xFFFFFFFF
)

// ============================================================================
// REGF Header
// ============================================================================
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x000   4    'r' 'e' 'g' 'f'
//	 0x004   4    Primary sequence number
//	 0x008   4    Secondary sequence number
//	 0x00C   8    Last write timestamp (FILETIME)
//	 0x014   4    Major version
//	 0x018   4    Minor version
//	 0x01C   4    Type (0 = primary file)
//	 0x020   4    Format (1 = direct memory load)
//	 0x024   4    Root cell offset (relative to 0x1000)
//	 0x028   4    Hive bins data size
//	 0x02C   4    Clustering factor
//	 0x030  64    File name (UTF-16LE, may be empty)
//	 0x1FC   4    XOR-32 checksum of the first 508 bytes
const (
	REGFSignatureOffset    = 0x000
	REGFSignatureSize      = 4
	REGFPrimarySeqOffset   = 0x004
	REGFSecondarySeqOffset = 0x008
	REGFTimeStampOffset    = 0x00C
	REGFMajorVersionOffset = 0x014
	REGFMinorVersionOffset = 0x018
	REGFTypeOffset         = 0x01C
	REGFFormatOffset       = 0x020
	REGFRootCellOffset     = 0x024
	REGFDataSizeOffset     = 0x028
	REGFClusterOffset      = 0x02C
	REGFFileNameOffset     = 0x030
	REGFFileNameSize       = 64
	REGFCheckSumOffset     = 0x1FC

	// REGFChecksumDwords is the number of dwords covered by the checksum.
	REGFChecksumDwords = 127

	// REGFFormatDirectMemoryLoad is the only format value this reader accepts.
	REGFFormatDirectMemoryLoad = 1
)

// ============================================================================
// HBIN Header
// ============================================================================
//
//	Offset  Size  Field
//	0x00    4     'h' 'b' 'i' 'n'
//	0x04    4     Offset of this bin (relative to 0x1000)
//	0x08    4     Size of this bin, multiple of 0x1000
//	0x0C    8     Reserved
//	0x14    8     Timestamp (FILETIME, first bin only)
//	0x1C    4     Spare
const (
	HBINFileOffsetField = 0x04
	HBINSizeOffset      = 0x08
	HBINTimeStampOffset = 0x14
)

// ============================================================================
// NK Record (Key Node)
// ============================================================================
// Offsets are relative to the payload start, i.e. the "nk" tag.
const (
	NKSignatureOffset      = 0x00 // USHORT, "nk"
	NKFlagsOffset          = 0x02 // USHORT
	NKLastWriteOffset      = 0x04 // FILETIME
	NKAccessBitsOffset     = 0x0C // ULONG
	NKParentOffset         = 0x10 // HCELL_INDEX of parent
	NKSubkeyCountOffset    = 0x14 // ULONG stable subkey count
	NKVolSubkeyCountOffset = 0x18 // ULONG volatile subkey count
	NKSubkeyListOffset     = 0x1C // HCELL_INDEX to stable subkey list
	NKVolSubkeyListOffset  = 0x20 // HCELL_INDEX to volatile subkey list
	NKValueCountOffset     = 0x24 // ULONG value count
	NKValueListOffset      = 0x28 // HCELL_INDEX to value list
	NKSecurityOffset       = 0x2C // HCELL_INDEX to SK
	NKClassNameOffset      = 0x30 // HCELL_INDEX to class data
	NKMaxNameLenOffset     = 0x34
	NKMaxClassLenOffset    = 0x38
	NKMaxValueNameOffset   = 0x3C
	NKMaxValueDataOffset   = 0x40
	NKWorkVarOffset        = 0x44
	NKNameLenOffset        = 0x48 // USHORT name length in bytes
	NKClassLenOffset       = 0x4A // USHORT class length in bytes
	NKNameOffset           = 0x4C // start of inline name

	// NKFixedHeaderSize is where the variable-length name begins.
	NKFixedHeaderSize = NKNameOffset

	// NKFlagCompressedName marks a name stored one byte per character.
	NKFlagCompressedName = 0x0020
)

// ============================================================================
// VK Record (Value Key)
// ============================================================================
const (
	VKSignatureOffset = 0x00 // "vk"
	VKNameLenOffset   = 0x02 // USHORT name length in bytes
	VKDataLenOffset   = 0x04 // ULONG, bit 31 = inline
	VKDataOffOffset   = 0x08 // HCELL_INDEX or inline payload
	VKTypeOffset      = 0x0C // ULONG registry type
	VKFlagsOffset     = 0x10 // USHORT
	VKSpareOffset     = 0x12 // USHORT
	VKNameOffset      = 0x14 // start of inline name

	// VKFixedHeaderSize is where the variable-length name begins.
	VKFixedHeaderSize = VKNameOffset

	// VKFlagASCIIName marks a name stored one byte per character.
	VKFlagASCIIName = 0x0001

	// VKDataInlineBit is the high bit of DataLength; when set, the payload
	// lives in the DataOffset field itself.
	VKDataInlineBit = 0x80000000

	// VKDataLengthMask extracts the real length from DataLength.
	VKDataLengthMask = 0x7FFFFFFF

	// VKInlineMax is the largest payload that fits in the DataOffset field.
	VKInlineMax = 4
)

// ============================================================================
// Subkey Lists (li / lf / lh / ri)
// ============================================================================
//
//	Offset  Size   Field
//	0x00    2      Tag
//	0x02    2      Entry count
//	0x04    n*E    Entries (E = 4 for li/ri, 8 for lf/lh)
const (
	IdxSignatureOffset = 0x00
	IdxCountOffset     = 0x02
	IdxListOffset      = 0x04

	// ListHeaderSize is the tag plus the count.
	ListHeaderSize = IdxListOffset

	// LIEntrySize is one bare NK offset.
	LIEntrySize = 4

	// LFEntrySize is an NK offset followed by a 4-byte hint (lf) or hash (lh).
	LFEntrySize = 8

	// RIEntrySize is one offset to a leaf list.
	RIEntrySize = 4
)

// ============================================================================
// DB Record (Big Data)
// ============================================================================
const (
	DBSignatureOffset = 0x00 // "db"
	DBCountOffset     = 0x02 // USHORT segment count
	DBListOffset      = 0x04 // HCELL_INDEX to the segment offset list
	DBUnknown1Offset  = 0x08 // ULONG, never read by Windows

	// DBHeaderSize is the part of the record this reader decodes.
	DBHeaderSize = DBUnknown1Offset

	// DBChunkSize is the largest value Windows stores in a single data cell
	// once a hive is version 1.4 or newer; anything longer is segmented.
	DBChunkSize = 16344

	// DBMinMinorVersion is the first hive minor version that knows big data.
	DBMinMinorVersion = 4
)
