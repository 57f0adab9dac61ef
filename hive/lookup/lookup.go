package lookup

import (
	"fmt"
	"log/slog"

	"github.com/joshuapare/hivedigger/hive"
	"github.com/joshuapare/hivedigger/hive/subkeys"
	"github.com/joshuapare/hivedigger/hive/values"
	"github.com/joshuapare/hivedigger/internal/format"
	"github.com/joshuapare/hivedigger/internal/logger"
)

// Options tunes a lookup.
type Options struct {
	// FoldCase matches key and value names case-insensitively. Names are
	// matched exactly by default.
	FoldCase bool

	// LenientIndexRoot keeps scanning an ri list past sub-lists that fail
	// for any reason. By default only a miss or a non-leaf sub-list is
	// skipped and corruption is reported.
	LenientIndexRoot bool

	// Logger receives one debug record per step. Nil uses logger.L.
	Logger *slog.Logger
}

func (o Options) log() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logger.L
}

// Result is a resolved value with the records that led to it.
type Result struct {
	Header  format.Header
	Key     hive.KeyNode
	Value   hive.ValueRecord
	Storage values.Storage
	Data    []byte
}

// Extract returns the data of value under the key at path.
func Extract(src hive.Source, path []string, value string, opts Options) ([]byte, error) {
	res, err := Lookup(src, path, value, opts)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// Syskey returns the JD value under CurrentControlSet\Control\Lsa.
func Syskey(src hive.Source, opts Options) ([]byte, error) {
	return Extract(src, DefaultPath, DefaultValue, opts)
}

// Lookup is Extract returning the full Result.
func Lookup(src hive.Source, path []string, value string, opts Options) (Result, error) {
	hdr, key, err := Descend(src, path, opts)
	if err != nil {
		return Result{}, err
	}
	log := opts.log()

	vk, err := values.Find(src, key, value, values.Options{FoldCase: opts.FoldCase})
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", JoinPath(path), err)
	}
	storage := values.Route(vk, hdr.MinorVersion)
	log.Debug("value found",
		"name", vk.Name,
		"offset", vk.Offset,
		"type", vk.RegType().String(),
		"length", vk.Length(),
		"storage", storage.String())

	data, err := values.Materialize(src, vk, hdr.MinorVersion)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", JoinPath(path), err)
	}
	return Result{Header: hdr, Key: key, Value: vk, Storage: storage, Data: data}, nil
}

// Descend validates the header and walks from the root key down path,
// returning the header and the last key node.
func Descend(src hive.Source, path []string, opts Options) (format.Header, hive.KeyNode, error) {
	log := opts.log()

	hdr, err := hive.LoadHeader(src)
	if err != nil {
		return format.Header{}, hive.KeyNode{}, err
	}
	log.Debug("header loaded",
		"version", fmt.Sprintf("%d.%d", hdr.MajorVersion, hdr.MinorVersion),
		"root", hdr.RootCellOffset,
		"checksum_ok", hdr.ChecksumValid())

	key, err := hive.LoadKeyNode(src, hdr.RootCellOffset)
	if err != nil {
		return format.Header{}, hive.KeyNode{}, fmt.Errorf("root key: %w", err)
	}

	skOpts := subkeys.Options{FoldCase: opts.FoldCase, Lenient: opts.LenientIndexRoot}
	for i, seg := range path {
		off, err := subkeys.ResolveChild(src, key, seg, skOpts)
		if err != nil {
			return format.Header{}, hive.KeyNode{}, fmt.Errorf("%s: %w", JoinPath(path[:i+1]), err)
		}
		key, err = hive.LoadKeyNode(src, off)
		if err != nil {
			return format.Header{}, hive.KeyNode{}, fmt.Errorf("%s: %w", JoinPath(path[:i+1]), err)
		}
		log.Debug("descended", "segment", seg, "offset", off,
			"subkeys", key.SubkeyCount, "values", key.ValueCount)
	}
	return hdr, key, nil
}
