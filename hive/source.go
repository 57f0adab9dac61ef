package hive

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/hivedigger/internal/buf"
	"github.com/joshuapare/hivedigger/internal/format"
	"github.com/joshuapare/hivedigger/internal/mmfile"
	"github.com/joshuapare/hivedigger/pkg/types"
)

// Source is random access to a hive image. Implementations must allow
// concurrent ReadAt calls; *bytes.Reader, *os.File and *File all do.
type Source interface {
	io.ReaderAt
	Size() int64
}

// OpenOptions controls how Open reads the file.
type OpenOptions struct {
	// NoMmap reads through the file descriptor instead of mapping it.
	NoMmap bool
}

// File is a Source backed by a file on disk.
type File struct {
	r     io.ReaderAt
	size  int64
	close func() error
}

// Open opens the hive at path read-only. The file is memory-mapped unless
// opts.NoMmap is set.
func Open(path string, opts OpenOptions) (*File, error) {
	if !opts.NoMmap {
		m, err := mmfile.Map(path)
		if err != nil {
			return nil, fmt.Errorf("hive: open %s: %w", path, err)
		}
		return &File{r: bytes.NewReader(m.Bytes()), size: int64(m.Len()), close: m.Close}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hive: open %s: %w", path, err)
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("hive: stat %s: %w", path, err)
	}
	return &File{r: f, size: st.Size(), close: f.Close}, nil
}

// ReadAt implements io.ReaderAt.
func (f *File) ReadAt(p []byte, off int64) (int, error) { return f.r.ReadAt(p, off) }

// Size returns the file size in bytes.
func (f *File) Size() int64 { return f.size }

// Close releases the mapping or file descriptor. Further calls are no-ops.
func (f *File) Close() error {
	if f == nil || f.close == nil {
		return nil
	}
	c := f.close
	f.close = nil
	f.r = bytes.NewReader(nil)
	f.size = 0
	return c()
}

// Abs converts a cell offset stored in the hive to an absolute file offset.
func Abs(rel uint32) int64 {
	return format.HiveDataBase + int64(rel)
}

// ReadSpan reads exactly n bytes at absolute offset off. A span that leaves
// the image is Truncated; what names the record for the message.
func ReadSpan(src Source, off, n int64, what string) ([]byte, error) {
	if _, err := buf.CheckSpan(src.Size(), off, n); err != nil {
		return nil, types.Wrap(types.ErrKindTruncated, what, err)
	}
	b := make([]byte, n)
	got, err := src.ReadAt(b, off)
	if got < len(b) {
		if err == nil || err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, types.Errorf(types.ErrKindTruncated,
				"%s: short read at %#x (have %d, need %d)", what, off, got, n)
		}
		return nil, fmt.Errorf("%s: read at %#x: %w", what, off, err)
	}
	return b, nil
}
