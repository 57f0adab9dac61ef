// Package subkeys resolves a child key name through a key's subkey list.
//
// Four list encodings exist on disk, all sharing a 2-byte tag and a 2-byte
// entry count:
//   - li (index leaf): [NK offset (4)] * count
//   - lf (fast leaf):  [NK offset (4) + name hint (4)] * count
//   - lh (hash leaf):  [NK offset (4) + name hash (4)] * count
//   - ri (index root): [leaf list offset (4)] * count
//
// Leaf entries are scanned in order and each candidate key node is loaded
// and its name compared; the hint and hash are skipped, never trusted. An
// ri list is walked sibling by sibling: a sub-list that does not hold the
// name, or that is not a leaf list, moves the scan on to the next one.
//
// Every declared count is checked against the image size before the
// entries are read, so a hostile count costs a Truncated error rather than
// a huge read.
package subkeys
