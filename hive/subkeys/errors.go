package subkeys

import (
	"github.com/joshuapare/hivedigger/internal/format"
	"github.com/joshuapare/hivedigger/pkg/types"
)

func errNotFound(name string) error {
	return types.Errorf(types.ErrKindSubkeyNotFound, "subkey %q not found", name)
}

func errUnsupported(rel uint32, kind format.ListKind) error {
	return types.Errorf(types.ErrKindUnsupportedListType, "subkey list at %#x: %v list cannot be resolved here", rel, kind)
}

func errUnknownTag(rel uint32, h format.ListHeader) error {
	return types.Errorf(types.ErrKindUnsupportedListType, "subkey list at %#x: unknown tag %s", rel, h.TagString())
}

// continuable reports whether an ri scan may move past a sub-list that
// failed with err.
func continuable(err error) bool {
	switch types.KindOf(err) {
	case types.ErrKindSubkeyNotFound, types.ErrKindUnsupportedListType:
		return true
	default:
		return false
	}
}
