// Package hivegen writes small synthetic hive images for tests. A Hive is a
// REGF header followed by a single hive bin that grows as cells are added;
// Bytes pads the bin to a 4 KiB multiple and fills in the header checksum.
package hivegen

import (
	"fmt"
	"os"
	"time"

	"github.com/joshuapare/hivedigger/internal/format"
)

// DefaultMinorVersion is the minor version written unless overridden
// (Windows XP and later write 1.5).
const DefaultMinorVersion = 5

// Hive is an in-memory hive image under construction.
type Hive struct {
	minor    uint32
	format   uint32
	fileName string
	written  time.Time
	root     uint32

	bins  []byte            // everything after the REGF header
	names map[uint32]string // nk offset -> name, for lf hints and lh hashes
}

// Option customizes a Hive.
type Option func(*Hive)

// WithMinorVersion sets the header minor version.
func WithMinorVersion(v uint32) Option { return func(h *Hive) { h.minor = v } }

// WithFormat sets the header format field.
func WithFormat(v uint32) Option { return func(h *Hive) { h.format = v } }

// WithFileName sets the embedded file name.
func WithFileName(name string) Option { return func(h *Hive) { h.fileName = name } }

// WithLastWrite sets the header timestamp.
func WithLastWrite(t time.Time) Option { return func(h *Hive) { h.written = t } }

// New starts an empty hive with one hive bin header.
func New(opts ...Option) *Hive {
	h := &Hive{
		minor:   DefaultMinorVersion,
		format:  format.REGFFormatDirectMemoryLoad,
		written: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		bins:    make([]byte, format.HBINHeaderSize),
		names:   make(map[uint32]string),
	}
	copy(h.bins, format.HBINSignature)
	for _, o := range opts {
		o(h)
	}
	return h
}

// MinorVersion returns the minor version the header will carry.
func (h *Hive) MinorVersion() uint32 { return h.minor }

// SetRoot sets the root cell offset stored in the header.
func (h *Hive) SetRoot(rel uint32) { h.root = rel }

// Cell appends an allocated cell holding payload and returns its offset.
// The size prefix covers the payload rounded up to 8 bytes.
func (h *Hive) Cell(payload []byte) uint32 {
	return h.place(payload, int32(format.Align8(format.CellHeaderSize+len(payload))))
}

// ExactCell appends an allocated cell whose size prefix is exactly
// len(payload)+4. The next cell still starts on an 8-byte boundary.
func (h *Hive) ExactCell(payload []byte) uint32 {
	return h.place(payload, int32(format.CellHeaderSize+len(payload)))
}

// RawCell appends a cell with an arbitrary size prefix. The bytes reserved
// are payload rounded up to 8, independent of size.
func (h *Hive) RawCell(payload []byte, size int32) uint32 {
	return h.place(payload, size)
}

func (h *Hive) place(payload []byte, size int32) uint32 {
	off := len(h.bins)
	n := format.Align8(format.CellHeaderSize + len(payload))
	h.bins = append(h.bins, make([]byte, n)...)
	if size > 0 {
		size = -size
	}
	format.PutI32(h.bins, off, size)
	copy(h.bins[off+format.CellHeaderSize:], payload)
	return uint32(off)
}

// Key describes a key node. Zero offsets for Subkeys or Values are written
// as the 0xFFFFFFFF "none" sentinel.
type Key struct {
	Name string
	// UTF16 stores the name as UTF-16LE even when it would compress.
	UTF16 bool

	Subkeys     uint32
	SubkeyCount uint32
	Values      uint32
	ValueCount  uint32
	Parent      uint32
}

// NK appends a key node and returns its offset.
func (h *Hive) NK(k Key) uint32 {
	var (
		raw        []byte
		compressed bool
		err        error
	)
	if k.UTF16 {
		raw, err = format.EncodeUTF16(k.Name)
	} else {
		raw, compressed, err = format.EncodeName(k.Name)
	}
	if err != nil {
		panic(fmt.Sprintf("hivegen: encode %q: %v", k.Name, err))
	}
	off := h.RawNK(raw, compressed, k)
	h.names[off] = k.Name
	return off
}

// RawNK appends a key node with the given name bytes, ignoring k.Name.
func (h *Hive) RawNK(name []byte, compressed bool, k Key) uint32 {
	p := make([]byte, format.NKFixedHeaderSize+len(name))
	copy(p, format.NKSignature)
	var flags uint16
	if compressed {
		flags |= format.NKFlagCompressedName
	}
	format.PutU16(p, format.NKFlagsOffset, flags)
	format.PutU64(p, format.NKLastWriteOffset, format.TimeToFiletime(h.written))
	format.PutU32(p, format.NKParentOffset, k.Parent)
	format.PutU32(p, format.NKSubkeyCountOffset, k.SubkeyCount)
	format.PutU32(p, format.NKSubkeyListOffset, orNone(k.Subkeys))
	format.PutU32(p, format.NKVolSubkeyListOffset, format.InvalidOffset)
	format.PutU32(p, format.NKValueCountOffset, k.ValueCount)
	format.PutU32(p, format.NKValueListOffset, orNone(k.Values))
	format.PutU32(p, format.NKSecurityOffset, format.InvalidOffset)
	format.PutU32(p, format.NKClassNameOffset, format.InvalidOffset)
	format.PutU16(p, format.NKNameLenOffset, uint16(len(name)))
	copy(p[format.NKFixedHeaderSize:], name)
	return h.Cell(p)
}

// Tree appends a key with the given children under a list of kind and
// returns the key's offset. An empty children slice writes no list.
func (h *Hive) Tree(name string, kind format.ListKind, children []uint32, values ...uint32) uint32 {
	k := Key{Name: name}
	if len(children) > 0 {
		k.Subkeys = h.List(kind, children...)
		k.SubkeyCount = uint32(len(children))
	}
	if len(values) > 0 {
		k.Values = h.ValueList(values...)
		k.ValueCount = uint32(len(values))
	}
	return h.NK(k)
}

// List appends a subkey list of kind. For li and lh/lf the offsets are key
// nodes; for ri they are other lists.
func (h *Hive) List(kind format.ListKind, offsets ...uint32) uint32 {
	es := kind.EntrySize()
	if es == 0 {
		panic(fmt.Sprintf("hivegen: cannot write %v list", kind))
	}
	tag := map[format.ListKind][]byte{
		format.ListLI: format.LISignature,
		format.ListLF: format.LFSignature,
		format.ListLH: format.LHSignature,
		format.ListRI: format.RISignature,
	}[kind]
	return h.RawList(tag, len(offsets), h.entries(kind, offsets))
}

// RawList appends a list cell with an arbitrary tag, declared count, and
// entry bytes.
func (h *Hive) RawList(tag []byte, count int, entries []byte) uint32 {
	p := make([]byte, format.ListHeaderSize+len(entries))
	copy(p, tag)
	format.PutU16(p, format.IdxCountOffset, uint16(count))
	copy(p[format.ListHeaderSize:], entries)
	return h.Cell(p)
}

func (h *Hive) entries(kind format.ListKind, offsets []uint32) []byte {
	es := kind.EntrySize()
	b := make([]byte, es*len(offsets))
	for i, off := range offsets {
		format.PutU32(b, i*es, off)
		switch kind {
		case format.ListLF:
			hint := format.LFHint(h.names[off])
			copy(b[i*es+format.OffsetFieldSize:], hint[:])
		case format.ListLH:
			format.PutU32(b, i*es+format.OffsetFieldSize, format.LHHash(h.names[off]))
		}
	}
	return b
}

// ValueList appends a value list cell.
func (h *Hive) ValueList(offsets ...uint32) uint32 {
	p := make([]byte, format.OffsetFieldSize*len(offsets))
	for i, off := range offsets {
		format.PutU32(p, i*format.OffsetFieldSize, off)
	}
	return h.Cell(p)
}

func orNone(off uint32) uint32 {
	if off == 0 {
		return format.InvalidOffset
	}
	return off
}

// Bytes returns the finished image. It may be called more than once.
func (h *Hive) Bytes() []byte {
	binSize := format.AlignHBIN(len(h.bins))
	out := make([]byte, format.HeaderSize+binSize)

	copy(out, format.REGFSignature)
	format.PutU32(out, format.REGFPrimarySeqOffset, 1)
	format.PutU32(out, format.REGFSecondarySeqOffset, 1)
	format.PutU64(out, format.REGFTimeStampOffset, format.TimeToFiletime(h.written))
	format.PutU32(out, format.REGFMajorVersionOffset, 1)
	format.PutU32(out, format.REGFMinorVersionOffset, h.minor)
	format.PutU32(out, format.REGFFormatOffset, h.format)
	format.PutU32(out, format.REGFRootCellOffset, h.root)
	format.PutU32(out, format.REGFDataSizeOffset, uint32(binSize))
	format.PutU32(out, format.REGFClusterOffset, 1)
	if h.fileName != "" {
		name, err := format.EncodeUTF16(h.fileName)
		if err != nil {
			panic(fmt.Sprintf("hivegen: encode file name: %v", err))
		}
		copy(out[format.REGFFileNameOffset:format.REGFFileNameOffset+format.REGFFileNameSize], name)
	}
	format.PutU32(out, format.REGFCheckSumOffset, format.HeaderChecksum(out))

	bins := out[format.HeaderSize:]
	copy(bins, h.bins)
	format.PutU32(bins, format.HBINFileOffsetField, 0)
	format.PutU32(bins, format.HBINSizeOffset, uint32(binSize))
	format.PutU64(bins, format.HBINTimeStampOffset, format.TimeToFiletime(h.written))

	// Leftover bin space becomes one free cell.
	if free := binSize - len(h.bins); free >= format.CellHeaderSize {
		format.PutI32(bins, len(h.bins), int32(free))
	}
	return out
}

// WriteFile writes the finished image to path.
func (h *Hive) WriteFile(path string) error {
	return os.WriteFile(path, h.Bytes(), 0o644)
}
