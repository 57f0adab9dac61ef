// Package values finds a named value under a key node and materializes its
// data.
//
// A key's value list is a cell holding ValueCount 4-byte offsets of vk
// records. A vk's data lives in one of three places:
//   - inline: bit 31 of the length is set and up to 4 bytes sit in the
//     data offset field itself
//   - a single data cell at the data offset
//   - a db record (see package bigdata), used only when the length exceeds
//     16344 bytes and the hive's minor version is at least 4
package values
