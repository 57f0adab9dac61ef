// Package bigdata reassembles values stored in the segmented "db" format.
//
// Hives of version 1.4 and later store values longer than 16344 bytes as a
// db record pointing at a list of segment cells:
//
//	Offset  Size  Field
//	------  ----  -----
//	0x00    2     Signature ("db")
//	0x02    2     Number of segments (n)
//	0x04    4     Offset of the segment list cell
//	0x08    4     Unused
//
// The segment list cell holds n 4-byte cell offsets. Each segment's
// payload is its cell size minus the 4-byte prefix, and the value is the
// concatenation of the payloads in list order.
package bigdata
