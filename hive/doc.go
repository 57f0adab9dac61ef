// Package hive reads records out of a Windows Registry hive image.
//
// # File Structure
//
// A registry hive file consists of:
//
//	[REGF Header - 4KB] [HBIN 0] [HBIN 1] ... [HBIN N]
//
// Each HBIN contains cells that store keys, values, and index structures.
// Cells are identified by offsets relative to the first HBIN (absolute
// 0x1000); only the REGF header's own fields are absolute.
//
// # Reading
//
// Nothing is cached. Every loader takes a Source and a cell offset, issues
// the reads it needs at absolute positions, validates them against the
// image size, and returns a plain value:
//
//	src, err := hive.Open("/path/to/SYSTEM", hive.OpenOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	hdr, err := hive.LoadHeader(src)
//	root, err := hive.LoadKeyNode(src, hdr.RootCellOffset)
//
// Walking subkey lists and materializing value data live in the subkeys,
// values, and bigdata packages; lookup ties them together.
package hive
