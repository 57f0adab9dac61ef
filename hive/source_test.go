package hive

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/hivedigger/internal/format"
	"github.com/joshuapare/hivedigger/internal/testutil/hivegen"
	"github.com/joshuapare/hivedigger/pkg/types"
)

func TestOpen(t *testing.T) {
	img := hivegen.System([]byte{1, 2, 3, 4, 5, 6, 7, 8}).Bytes()
	path := filepath.Join(t.TempDir(), "SYSTEM")
	require.NoError(t, os.WriteFile(path, img, 0o644))

	for _, noMmap := range []bool{false, true} {
		f, err := Open(path, OpenOptions{NoMmap: noMmap})
		require.NoError(t, err)
		require.Equal(t, int64(len(img)), f.Size())

		got, err := ReadSpan(f, 0, 4, "sig")
		require.NoError(t, err)
		require.Equal(t, "regf", string(got))

		require.NoError(t, f.Close())
		require.NoError(t, f.Close())
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"), OpenOptions{})
	require.ErrorIs(t, err, os.ErrNotExist)
	_, err = Open(filepath.Join(t.TempDir(), "missing"), OpenOptions{NoMmap: true})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadSpanBounds(t *testing.T) {
	src := bytes.NewReader(make([]byte, 16))

	b, err := ReadSpan(src, 8, 8, "tail")
	require.NoError(t, err)
	require.Len(t, b, 8)

	_, err = ReadSpan(src, 12, 8, "overrun")
	require.ErrorIs(t, err, types.ErrTruncated)

	_, err = ReadSpan(src, -1, 1, "negative")
	require.ErrorIs(t, err, types.ErrTruncated)

	b, err = ReadSpan(src, 16, 0, "empty")
	require.NoError(t, err)
	require.Empty(t, b)
}

// shortSource claims more bytes than it can deliver.
type shortSource struct{ *bytes.Reader }

func (s shortSource) Size() int64 { return s.Reader.Size() + 100 }

func TestReadSpanShortRead(t *testing.T) {
	src := shortSource{bytes.NewReader(make([]byte, 16))}
	_, err := ReadSpan(src, 8, 16, "short")
	require.ErrorIs(t, err, types.ErrTruncated)
}

func TestAbs(t *testing.T) {
	require.Equal(t, int64(format.HeaderSize), Abs(0))
	require.Equal(t, int64(0x1020), Abs(0x20))
	require.Equal(t, int64(format.HeaderSize)+0xFFFFFFFF, Abs(format.InvalidOffset))
}
