package hive

import (
	"github.com/joshuapare/hivedigger/internal/format"
)

// LoadHeader reads and validates the REGF header. It is the first read any
// walk makes: a wrong signature is MalformedRecord and a format other than
// direct memory load is UnsupportedFormat, both reported before a single
// hive bin byte is touched.
func LoadHeader(src Source) (format.Header, error) {
	hdr, err := readHeader(src)
	if err != nil {
		return format.Header{}, err
	}
	if err := hdr.CheckFormat(); err != nil {
		return format.Header{}, err
	}
	return hdr, nil
}

// readHeader parses the header without the format check.
func readHeader(src Source) (format.Header, error) {
	n := min(src.Size(), int64(format.HeaderSize))
	b, err := ReadSpan(src, 0, n, "regf header")
	if err != nil {
		return format.Header{}, err
	}
	return format.ParseHeader(b)
}
