package hive

import (
	"fmt"

	"github.com/joshuapare/hivedigger/internal/format"
)

// LoadHBIN decodes the hive bin header at absolute offset abs.
func LoadHBIN(src Source, abs int64) (format.HBIN, error) {
	b, err := ReadSpan(src, abs, format.HBINHeaderSize, "hbin")
	if err != nil {
		return format.HBIN{}, err
	}
	h, err := format.DecodeHBINHeader(b)
	if err != nil {
		return format.HBIN{}, fmt.Errorf("hbin at %#x: %w", abs, err)
	}
	return h, nil
}
