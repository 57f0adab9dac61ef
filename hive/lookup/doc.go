// Package lookup walks a hive from its root key down a path of key names
// and returns the data of a named value. Each call is a fresh walk: the
// header is validated, the root key loaded, every path segment resolved
// through its parent's subkey list, and the final value found and
// materialized. Errors from any step come back with their kind intact.
//
//	src, _ := hive.Open("SYSTEM", hive.OpenOptions{})
//	defer src.Close()
//	jd, err := lookup.Syskey(src, lookup.Options{})
package lookup
