package subkeys

import "golang.org/x/text/cases"

// Options tunes name matching and ri error handling.
type Options struct {
	// FoldCase matches names case-insensitively, the way Windows does.
	FoldCase bool

	// Lenient keeps scanning an ri list after any sub-list error, not just
	// after a miss or a non-leaf sub-list.
	Lenient bool
}

// matcher compares stored names against one requested name.
type matcher struct {
	want string
	fold bool
}

func (o Options) matcher(name string) matcher {
	if o.FoldCase {
		return matcher{want: cases.Fold().String(name), fold: true}
	}
	return matcher{want: name}
}

func (m matcher) match(stored string) bool {
	if m.fold {
		return cases.Fold().String(stored) == m.want
	}
	return stored == m.want
}
