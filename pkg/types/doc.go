// Package types holds the small set of public types shared by the hive
// readers: the typed error used to report why a lookup failed, and the
// registry value type enumeration.
//
// Errors carry a stable Kind so callers can branch on intent rather than
// text:
//
//	data, err := lookup.Syskey(src, lookup.Options{})
//	switch {
//	case errors.Is(err, types.ErrValueNotFound):
//	    // hive is fine, the value just is not there
//	case types.KindOf(err) == types.ErrKindTruncated:
//	    // the file ends before a declared structure does
//	}
//
// This package has no dependencies beyond the standard library.
package types
