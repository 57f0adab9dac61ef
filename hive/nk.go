package hive

import (
	"fmt"

	"github.com/joshuapare/hivedigger/internal/format"
)

// KeyNode is a decoded "nk" record together with its name.
type KeyNode struct {
	// Offset is the cell offset the node was loaded from.
	Offset uint32
	format.NKHeader
	Name string
}

// LoadKeyNode loads the key node in the cell at rel. The name is read with a
// separate bounds-checked read right after the 0x4C-byte fixed header.
func LoadKeyNode(src Source, rel uint32) (KeyNode, error) {
	c, b, err := LoadRecord(src, rel, format.NKFixedHeaderSize, "nk")
	if err != nil {
		return KeyNode{}, err
	}
	h, err := format.DecodeNKHeader(b)
	if err != nil {
		return KeyNode{}, fmt.Errorf("nk at %#x: %w", rel, err)
	}
	raw, err := ReadSpan(src, c.PayloadAbs()+format.NKFixedHeaderSize, int64(h.NameLength), "nk name")
	if err != nil {
		return KeyNode{}, fmt.Errorf("nk at %#x: %w", rel, err)
	}
	name, err := format.DecodeName(raw, h.NameIsCompressed())
	if err != nil {
		return KeyNode{}, fmt.Errorf("nk at %#x: %w", rel, err)
	}
	return KeyNode{Offset: rel, NKHeader: h, Name: name}, nil
}
