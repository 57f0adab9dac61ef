package format

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/hivedigger/pkg/types"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DecodeName converts a key or value name to UTF-8. Compressed names hold one
// Windows-1252 byte per character; the rest are UTF-16LE.
func DecodeName(raw []byte, compressed bool) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	if compressed {
		// ASCII is identical in Windows-1252 and UTF-8
		if isASCII(raw) {
			return string(raw), nil
		}
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
		if err != nil {
			return "", types.Wrap(types.ErrKindInvalidText, "decode Windows-1252 name", err)
		}
		return string(decoded), nil
	}
	if len(raw)%2 != 0 {
		return "", types.Errorf(types.ErrKindInvalidText, "utf-16 name has odd length %d", len(raw))
	}
	if at := unpairedSurrogate(raw); at >= 0 {
		return "", types.Errorf(types.ErrKindInvalidText, "utf-16 name has unpaired surrogate at byte %d", at)
	}
	decoded, err := utf16le.NewDecoder().Bytes(raw)
	if err != nil {
		return "", types.Wrap(types.ErrKindInvalidText, "decode utf-16 name", err)
	}
	return string(decoded), nil
}

// EncodeName produces the on-disk form Windows would pick for name: the
// compressed form when every character has a Windows-1252 byte, UTF-16LE
// otherwise.
func EncodeName(name string) (raw []byte, compressed bool, err error) {
	if name == "" {
		return nil, true, nil
	}
	if enc, encErr := charmap.Windows1252.NewEncoder().Bytes([]byte(name)); encErr == nil {
		return enc, true, nil
	}
	enc, err := utf16le.NewEncoder().Bytes([]byte(name))
	if err != nil {
		return nil, false, types.Wrap(types.ErrKindInvalidText, "encode utf-16 name", err)
	}
	return enc, false, nil
}

// EncodeUTF16 encodes name as UTF-16LE regardless of its content.
func EncodeUTF16(name string) ([]byte, error) {
	enc, err := utf16le.NewEncoder().Bytes([]byte(name))
	if err != nil {
		return nil, types.Wrap(types.ErrKindInvalidText, "encode utf-16 name", err)
	}
	return enc, nil
}

// unpairedSurrogate returns the byte index of the first lone surrogate in
// the UTF-16LE buffer b, or -1. The x/text decoder replaces lone
// surrogates with U+FFFD instead of failing.
func unpairedSurrogate(b []byte) int {
	for i := 0; i+1 < len(b); i += 2 {
		u := ReadU16(b, i)
		switch {
		case u >= 0xD800 && u <= 0xDBFF:
			if i+4 > len(b) {
				return i
			}
			lo := ReadU16(b, i+2)
			if lo < 0xDC00 || lo > 0xDFFF {
				return i
			}
			i += 2
		case u >= 0xDC00 && u <= 0xDFFF:
			return i
		}
	}
	return -1
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}
