package hive

import (
	"time"

	"github.com/joshuapare/hivedigger/internal/format"
)

// Info summarizes a hive's header and first bin.
type Info struct {
	Header format.Header

	// LastWrite is the header timestamp.
	LastWrite time.Time
	// FileName is the embedded UTF-16 file name, usually a tail of the
	// path the hive was loaded from. Empty when absent or undecodable.
	FileName string

	ChecksumValid   bool
	Clean           bool // primary and secondary sequence numbers agree
	FormatSupported bool

	FirstBin format.HBIN
	// RootName is the root key's name, set when the format is supported.
	RootName string
}

// Inspect reads the header, the first hive bin header and the root key.
// Unlike LoadHeader it reports hives with an unsupported format instead of
// failing, so that they can still be described.
func Inspect(src Source) (Info, error) {
	hdr, err := readHeader(src)
	if err != nil {
		return Info{}, err
	}
	info := Info{
		Header:          hdr,
		LastWrite:       format.FiletimeToTime(hdr.LastWriteRaw),
		FileName:        decodeFileName(hdr.FileNameRaw),
		ChecksumValid:   hdr.ChecksumValid(),
		Clean:           hdr.SequencesMatch(),
		FormatSupported: hdr.CheckFormat() == nil,
	}

	info.FirstBin, err = LoadHBIN(src, format.HiveDataBase)
	if err != nil {
		return info, err
	}
	if !info.FormatSupported {
		return info, nil
	}
	root, err := LoadKeyNode(src, hdr.RootCellOffset)
	if err != nil {
		return info, err
	}
	info.RootName = root.Name
	return info, nil
}

// decodeFileName decodes the NUL-terminated UTF-16LE name field.
func decodeFileName(raw []byte) string {
	end := len(raw)
	for i := 0; i+1 < len(raw); i += 2 {
		if raw[i] == 0 && raw[i+1] == 0 {
			end = i
			break
		}
	}
	name, err := format.DecodeName(raw[:end&^1], false)
	if err != nil {
		return ""
	}
	return name
}
