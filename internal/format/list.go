package format

import "fmt"

// ListKind identifies one of the four subkey list encodings.
type ListKind uint8

const (
	ListUnknown ListKind = iota
	ListLI               // index leaf: bare NK offsets
	ListLF               // fast leaf: NK offset + 4-byte name hint
	ListLH               // hash leaf: NK offset + 4-byte name hash
	ListRI               // index root: offsets of leaf lists
)

func (k ListKind) String() string {
	switch k {
	case ListLI:
		return "li"
	case ListLF:
		return "lf"
	case ListLH:
		return "lh"
	case ListRI:
		return "ri"
	default:
		return "unknown"
	}
}

// EntrySize returns the on-disk size of one entry, or 0 for ListUnknown.
func (k ListKind) EntrySize() int {
	switch k {
	case ListLI:
		return LIEntrySize
	case ListLF, ListLH:
		return LFEntrySize
	case ListRI:
		return RIEntrySize
	default:
		return 0
	}
}

// IsLeaf reports whether entries point directly at key nodes.
func (k ListKind) IsLeaf() bool {
	return k == ListLI || k == ListLF || k == ListLH
}

// ClassifyTag maps a two-byte list tag to its kind. Unknown tags are not an
// error at this level.
func ClassifyTag(tag []byte) ListKind {
	if len(tag) < SignatureSize {
		return ListUnknown
	}
	switch {
	case tag[0] == 'l' && tag[1] == 'i':
		return ListLI
	case tag[0] == 'l' && tag[1] == 'f':
		return ListLF
	case tag[0] == 'l' && tag[1] == 'h':
		return ListLH
	case tag[0] == 'r' && tag[1] == 'i':
		return ListRI
	default:
		return ListUnknown
	}
}

// ListHeader is the tag and entry count shared by every subkey list.
type ListHeader struct {
	Kind  ListKind
	Tag   [SignatureSize]byte
	Count uint16
}

// DecodeListHeader decodes the 4-byte list header in b.
func DecodeListHeader(b []byte) (ListHeader, error) {
	if len(b) < ListHeaderSize {
		return ListHeader{}, truncated("subkey list", len(b), ListHeaderSize)
	}
	return ListHeader{
		Kind:  ClassifyTag(b),
		Tag:   [SignatureSize]byte{b[0], b[1]},
		Count: ReadU16(b, IdxCountOffset),
	}, nil
}

// TagString renders the raw tag for error messages.
func (h ListHeader) TagString() string {
	return fmt.Sprintf("%q", h.Tag[:])
}
