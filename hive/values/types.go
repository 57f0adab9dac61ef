package values

// List holds the vk offsets of a key's value list, in hive order.
type List struct {
	VKRefs []uint32
}

// Len returns the number of values in the list.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.VKRefs)
}

// Storage says where a value's data is kept.
type Storage uint8

const (
	StorageInline    Storage = iota + 1 // in the vk's data offset field
	StorageCell                         // one data cell
	StorageSegmented                    // a db record and its segments
)

func (s Storage) String() string {
	switch s {
	case StorageInline:
		return "inline"
	case StorageCell:
		return "cell"
	case StorageSegmented:
		return "segmented"
	default:
		return "unknown"
	}
}

// Options tunes value name matching.
type Options struct {
	// FoldCase matches names case-insensitively.
	FoldCase bool
}
