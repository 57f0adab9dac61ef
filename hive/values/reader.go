package values

import (
	"fmt"

	"golang.org/x/text/cases"

	"github.com/joshuapare/hivedigger/hive"
	"github.com/joshuapare/hivedigger/hive/bigdata"
	"github.com/joshuapare/hivedigger/internal/buf"
	"github.com/joshuapare/hivedigger/internal/format"
	"github.com/joshuapare/hivedigger/pkg/types"
)

// Read loads the value list of nk. A key whose list offset is the
// 0xFFFFFFFF sentinel fails with ValueListAbsent without any read.
func Read(src hive.Source, nk hive.KeyNode) (*List, error) {
	if !nk.HasValueList() {
		return nil, types.Errorf(types.ErrKindValueListAbsent, "key %q has no value list", nk.Name)
	}
	c, err := hive.LoadCell(src, nk.ValueListOffset)
	if err != nil {
		return nil, fmt.Errorf("key %q value list: %w", nk.Name, err)
	}
	count := int64(nk.ValueCount)
	if _, err := buf.CheckListBounds(src.Size(), c.PayloadAbs(), count, format.OffsetFieldSize); err != nil {
		return nil, types.Wrap(types.ErrKindTruncated,
			fmt.Sprintf("key %q value list: %d entries", nk.Name, count), err)
	}
	raw, err := hive.ReadSpan(src, c.PayloadAbs(), count*format.OffsetFieldSize, "value list")
	if err != nil {
		return nil, err
	}
	refs := make([]uint32, count)
	for i := range refs {
		refs[i] = format.ReadU32(raw, i*format.OffsetFieldSize)
	}
	return &List{VKRefs: refs}, nil
}

// Find returns the first value of nk called name.
func Find(src hive.Source, nk hive.KeyNode, name string, opts Options) (hive.ValueRecord, error) {
	list, err := Read(src, nk)
	if err != nil {
		return hive.ValueRecord{}, err
	}
	want := name
	if opts.FoldCase {
		want = cases.Fold().String(name)
	}
	for i, ref := range list.VKRefs {
		vk, err := hive.LoadValue(src, ref)
		if err != nil {
			return hive.ValueRecord{}, fmt.Errorf("key %q value %d: %w", nk.Name, i, err)
		}
		got := vk.Name
		if opts.FoldCase {
			got = cases.Fold().String(got)
		}
		if got == want {
			return vk, nil
		}
	}
	return hive.ValueRecord{}, types.Errorf(types.ErrKindValueNotFound, "key %q has no value %q", nk.Name, name)
}

// Route reports where the data of vk lives in a hive of the given minor
// version. Values over DBChunkSize are segmented only from version 1.4 on;
// older hives keep them in one cell whatever the size.
func Route(vk hive.ValueRecord, minor uint32) Storage {
	switch {
	case vk.DataInline():
		return StorageInline
	case vk.Length() > format.DBChunkSize && minor >= format.DBMinMinorVersion:
		return StorageSegmented
	default:
		return StorageCell
	}
}

// Materialize returns the data of vk, exactly Length() bytes long.
func Materialize(src hive.Source, vk hive.ValueRecord, minor uint32) ([]byte, error) {
	n := vk.Length()
	switch Route(vk, minor) {
	case StorageInline:
		var field [format.VKInlineMax]byte
		format.PutU32(field[:], 0, vk.DataOffset)
		out := make([]byte, min(n, format.VKInlineMax))
		copy(out, field[:])
		return out, nil

	case StorageSegmented:
		data, err := bigdata.ReadN(src, vk.DataOffset, int64(n))
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", vk.Name, err)
		}
		if uint32(len(data)) < n {
			return nil, types.Errorf(types.ErrKindTruncated,
				"value %q: segments hold %d of %d bytes", vk.Name, len(data), n)
		}
		return data[:n], nil

	default:
		if n == 0 {
			return []byte{}, nil
		}
		data, err := hive.ReadSpan(src, hive.Abs(vk.DataOffset)+format.CellHeaderSize, int64(n), "value data")
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", vk.Name, err)
		}
		return data, nil
	}
}
