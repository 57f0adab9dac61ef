package format

import (
	"errors"
	"testing"

	"github.com/joshuapare/hivedigger/pkg/types"
)

func TestDecodeNameCompressed(t *testing.T) {
	got, err := DecodeName([]byte("Lsa"), true)
	if err != nil || got != "Lsa" {
		t.Fatalf("DecodeName ascii = %q, %v", got, err)
	}

	// 0xE4 is ä and 0x80 is the euro sign in Windows-1252.
	got, err = DecodeName([]byte{'K', 0xE4, 0x80}, true)
	if err != nil {
		t.Fatalf("DecodeName extended: %v", err)
	}
	if got != "Kä€" {
		t.Fatalf("DecodeName extended = %q", got)
	}
}

func TestDecodeNameUTF16(t *testing.T) {
	// "abcd_äöüß" in UTF-16LE
	raw := []byte{
		0x61, 0x00, 0x62, 0x00, 0x63, 0x00, 0x64, 0x00, 0x5F, 0x00,
		0xE4, 0x00, 0xF6, 0x00, 0xFC, 0x00, 0xDF, 0x00,
	}
	got, err := DecodeName(raw, false)
	if err != nil {
		t.Fatalf("DecodeName: %v", err)
	}
	if got != "abcd_äöüß" {
		t.Fatalf("DecodeName = %q", got)
	}

	// U+1D11E as a surrogate pair
	got, err = DecodeName([]byte{0x34, 0xD8, 0x1E, 0xDD}, false)
	if err != nil || got != "\U0001D11E" {
		t.Fatalf("surrogate pair = %q, %v", got, err)
	}
}

func TestDecodeNameInvalidText(t *testing.T) {
	cases := map[string][]byte{
		"odd length":    {0x61, 0x00, 0x62},
		"lone high":     {0x34, 0xD8},
		"high then bmp": {0x34, 0xD8, 0x61, 0x00},
		"lone low":      {0x61, 0x00, 0x1E, 0xDD},
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeName(raw, false)
			if !errors.Is(err, types.ErrInvalidText) {
				t.Fatalf("expected invalid text, got %v", err)
			}
		})
	}
}

func TestDecodeNameEmpty(t *testing.T) {
	for _, compressed := range []bool{true, false} {
		got, err := DecodeName(nil, compressed)
		if err != nil || got != "" {
			t.Fatalf("empty name = %q, %v", got, err)
		}
	}
}

func TestEncodeNameRoundTrip(t *testing.T) {
	for _, name := range []string{"CurrentControlSet", "Größe", "日本語キー", "\U0001D11E"} {
		raw, compressed, err := EncodeName(name)
		if err != nil {
			t.Fatalf("EncodeName(%q): %v", name, err)
		}
		got, err := DecodeName(raw, compressed)
		if err != nil || got != name {
			t.Fatalf("round trip %q -> %q, %v", name, got, err)
		}
	}

	raw, compressed, _ := EncodeName("Größe")
	if !compressed || len(raw) != 5 {
		t.Fatalf("Latin name should compress to 5 bytes, got %d compressed=%v", len(raw), compressed)
	}
	_, compressed, _ = EncodeName("日本語")
	if compressed {
		t.Fatalf("CJK name cannot compress")
	}
}
