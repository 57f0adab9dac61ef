package subkeys

import (
	"fmt"

	"github.com/joshuapare/hivedigger/hive"
	"github.com/joshuapare/hivedigger/internal/buf"
	"github.com/joshuapare/hivedigger/internal/format"
	"github.com/joshuapare/hivedigger/pkg/types"
)

// Classify reads the tag of the list at rel. An unknown tag yields
// format.ListUnknown without an error.
func Classify(src hive.Source, rel uint32) (format.ListKind, error) {
	h, _, err := loadHeader(src, rel)
	if err != nil {
		return format.ListUnknown, err
	}
	return h.Kind, nil
}

// Resolve finds name in the list at rel, already classified as kind, and
// returns the offset of the matching key node.
func Resolve(src hive.Source, rel uint32, kind format.ListKind, name string, opts Options) (uint32, error) {
	m := opts.matcher(name)
	switch {
	case kind.IsLeaf():
		return resolveLeaf(src, rel, kind, name, m)
	case kind == format.ListRI:
		return resolveIndexRoot(src, rel, name, m, opts)
	default:
		return 0, errUnsupported(rel, kind)
	}
}

// ResolveChild finds the child of parent called name. A key without a
// subkey list has no children, and the sentinel offset is never read.
func ResolveChild(src hive.Source, parent hive.KeyNode, name string, opts Options) (uint32, error) {
	if !parent.HasSubkeyList() {
		return 0, errNotFound(name)
	}
	kind, err := Classify(src, parent.SubkeyListOffset)
	if err != nil {
		return 0, fmt.Errorf("key %q: %w", parent.Name, err)
	}
	off, err := Resolve(src, parent.SubkeyListOffset, kind, name, opts)
	if err != nil {
		return 0, fmt.Errorf("key %q: %w", parent.Name, err)
	}
	return off, nil
}

func resolveLeaf(src hive.Source, rel uint32, kind format.ListKind, name string, m matcher) (uint32, error) {
	entries, count, err := loadEntries(src, rel, kind)
	if err != nil {
		return 0, err
	}
	es := kind.EntrySize()
	for i := 0; i < count; i++ {
		// lf/lh hint or hash in the second dword is skipped
		off := format.ReadU32(entries, i*es)
		nk, err := hive.LoadKeyNode(src, off)
		if err != nil {
			return 0, fmt.Errorf("%v list at %#x entry %d: %w", kind, rel, i, err)
		}
		if m.match(nk.Name) {
			return off, nil
		}
	}
	return 0, errNotFound(name)
}

func resolveIndexRoot(src hive.Source, rel uint32, name string, m matcher, opts Options) (uint32, error) {
	entries, count, err := loadEntries(src, rel, format.ListRI)
	if err != nil {
		return 0, err
	}
	for i := 0; i < count; i++ {
		sub := format.ReadU32(entries, i*format.RIEntrySize)
		off, err := resolveSubList(src, sub, name, m)
		if err == nil {
			return off, nil
		}
		if !continuable(err) && !opts.Lenient {
			return 0, fmt.Errorf("ri list at %#x entry %d: %w", rel, i, err)
		}
	}
	return 0, errNotFound(name)
}

// resolveSubList resolves name in one ri entry. Only leaf lists may hang
// off an ri; anything else is UnsupportedListType.
func resolveSubList(src hive.Source, rel uint32, name string, m matcher) (uint32, error) {
	h, _, err := loadHeader(src, rel)
	if err != nil {
		return 0, err
	}
	if h.Kind == format.ListUnknown {
		return 0, errUnknownTag(rel, h)
	}
	if !h.Kind.IsLeaf() {
		return 0, errUnsupported(rel, h.Kind)
	}
	return resolveLeaf(src, rel, h.Kind, name, m)
}

func loadHeader(src hive.Source, rel uint32) (format.ListHeader, hive.Cell, error) {
	c, b, err := hive.LoadRecord(src, rel, format.ListHeaderSize, "subkey list")
	if err != nil {
		return format.ListHeader{}, hive.Cell{}, err
	}
	h, err := format.DecodeListHeader(b)
	if err != nil {
		return format.ListHeader{}, hive.Cell{}, fmt.Errorf("subkey list at %#x: %w", rel, err)
	}
	return h, c, nil
}

// loadEntries reads the entry array of the list at rel after checking the
// declared count against the image size.
func loadEntries(src hive.Source, rel uint32, kind format.ListKind) ([]byte, int, error) {
	h, c, err := loadHeader(src, rel)
	if err != nil {
		return nil, 0, err
	}
	start := c.PayloadAbs() + format.ListHeaderSize
	count := int64(h.Count)
	es := int64(kind.EntrySize())
	if _, err := buf.CheckListBounds(src.Size(), start, count, es); err != nil {
		return nil, 0, types.Wrap(types.ErrKindTruncated,
			fmt.Sprintf("%v list at %#x: %d entries", kind, rel, count), err)
	}
	entries, err := hive.ReadSpan(src, start, count*es, "subkey list entries")
	if err != nil {
		return nil, 0, err
	}
	return entries, int(h.Count), nil
}
