package hive

import (
	"fmt"

	"github.com/joshuapare/hivedigger/internal/format"
	"github.com/joshuapare/hivedigger/pkg/types"
)

// ValueRecord is a decoded "vk" record together with its name. An empty
// name is the key's default value.
type ValueRecord struct {
	// Offset is the cell offset the record was loaded from.
	Offset uint32
	format.VKHeader
	Name string
}

// RegType returns the value's registry type.
func (v ValueRecord) RegType() types.RegType { return types.RegType(v.Type) }

// LoadValue loads the value record in the cell at rel.
func LoadValue(src Source, rel uint32) (ValueRecord, error) {
	c, b, err := LoadRecord(src, rel, format.VKFixedHeaderSize, "vk")
	if err != nil {
		return ValueRecord{}, err
	}
	h, err := format.DecodeVKHeader(b)
	if err != nil {
		return ValueRecord{}, fmt.Errorf("vk at %#x: %w", rel, err)
	}
	raw, err := ReadSpan(src, c.PayloadAbs()+format.VKFixedHeaderSize, int64(h.NameLength), "vk name")
	if err != nil {
		return ValueRecord{}, fmt.Errorf("vk at %#x: %w", rel, err)
	}
	name, err := format.DecodeName(raw, h.NameIsASCII())
	if err != nil {
		return ValueRecord{}, fmt.Errorf("vk at %#x: %w", rel, err)
	}
	return ValueRecord{Offset: rel, VKHeader: h, Name: name}, nil
}
