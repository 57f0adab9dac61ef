package values

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/hivedigger/hive"
	"github.com/joshuapare/hivedigger/internal/format"
	"github.com/joshuapare/hivedigger/internal/testutil/hivegen"
	"github.com/joshuapare/hivedigger/pkg/types"
)

func pattern(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i ^ (i >> 8))
	}
	return b
}

// keyWith writes a key holding vals and returns a source and the key.
func keyWith(t *testing.T, h *hivegen.Hive, vals ...uint32) (*bytes.Reader, hive.KeyNode) {
	t.Helper()
	k := hivegen.Key{Name: "Lsa"}
	if len(vals) > 0 {
		k.Values = h.ValueList(vals...)
		k.ValueCount = uint32(len(vals))
	}
	off := h.NK(k)
	src := bytes.NewReader(h.Bytes())
	nk, err := hive.LoadKeyNode(src, off)
	require.NoError(t, err)
	return src, nk
}

func TestFind(t *testing.T) {
	h := hivegen.New()
	first := h.Value("auditbaseobjects", types.REG_DWORD, []byte{0, 0, 0, 0})
	jd := h.Value("JD", types.REG_BINARY, []byte("abcdefgh"))
	last := h.Value("Security Packages", types.REG_MULTI_SZ, []byte{0, 0})
	src, nk := keyWith(t, h, first, jd, last)

	for name, want := range map[string]uint32{"auditbaseobjects": first, "JD": jd, "Security Packages": last} {
		vk, err := Find(src, nk, name, Options{})
		require.NoError(t, err)
		require.Equal(t, want, vk.Offset)
		require.Equal(t, name, vk.Name)
	}

	_, err := Find(src, nk, "jd", Options{})
	require.ErrorIs(t, err, types.ErrValueNotFound)

	vk, err := Find(src, nk, "jd", Options{FoldCase: true})
	require.NoError(t, err)
	require.Equal(t, jd, vk.Offset)
}

func TestFindValueListAbsent(t *testing.T) {
	h := hivegen.New()
	off := h.NK(hivegen.Key{Name: "Lsa"})
	src := hivegen.NewRecorder(h.Bytes())
	nk, err := hive.LoadKeyNode(src, off)
	require.NoError(t, err)
	src.Reset()

	_, err = Find(src, nk, "JD", Options{})
	require.ErrorIs(t, err, types.ErrValueListAbsent)
	require.Empty(t, src.Reads())
}

func TestFindEmptyList(t *testing.T) {
	h := hivegen.New()
	off := h.NK(hivegen.Key{Name: "Lsa", Values: h.ValueList(), ValueCount: 0})
	src := bytes.NewReader(h.Bytes())
	nk, err := hive.LoadKeyNode(src, off)
	require.NoError(t, err)

	_, err = Find(src, nk, "JD", Options{})
	require.ErrorIs(t, err, types.ErrValueNotFound)
}

func TestReadCountOverrunsImage(t *testing.T) {
	h := hivegen.New()
	off := h.NK(hivegen.Key{Name: "Lsa", Values: h.ValueList(0x20), ValueCount: 1 << 24})
	src := bytes.NewReader(h.Bytes())
	nk, err := hive.LoadKeyNode(src, off)
	require.NoError(t, err)

	_, err = Read(src, nk)
	require.ErrorIs(t, err, types.ErrTruncated)
}

func TestFindCorruptEntry(t *testing.T) {
	h := hivegen.New()
	bogus := h.NK(hivegen.Key{Name: "NotAValue"})
	src, nk := keyWith(t, h, bogus)

	_, err := Find(src, nk, "JD", Options{})
	require.ErrorIs(t, err, types.ErrMalformedRecord)
}

func TestMaterializeInline(t *testing.T) {
	field := []byte{0x11, 0x22, 0x33, 0x44}
	for n := 0; n <= 4; n++ {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			h := hivegen.New()
			// The raw field keeps all four bytes; only n of them are the value.
			off := h.VK("v", types.REG_BINARY, uint32(n)|format.VKDataInlineBit, format.ReadU32(field, 0))
			src := hivegen.NewRecorder(h.Bytes())
			vk, err := hive.LoadValue(src, off)
			require.NoError(t, err)
			src.Reset()

			require.Equal(t, StorageInline, Route(vk, 5))
			got, err := Materialize(src, vk, 5)
			require.NoError(t, err)
			require.Equal(t, field[:n], got)
			require.Empty(t, src.Reads(), "inline data needs no I/O")
		})
	}
}

func TestMaterializeInlineClampsLength(t *testing.T) {
	h := hivegen.New()
	off := h.VK("v", types.REG_DWORD, 9|format.VKDataInlineBit, 0x04030201)
	src := bytes.NewReader(h.Bytes())
	vk, err := hive.LoadValue(src, off)
	require.NoError(t, err)

	got, err := Materialize(src, vk, 5)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, got)
}

func TestMaterializeThreshold(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		minor   uint32
		segment bool
		want    Storage
	}{
		{"boundary direct at 1.4", format.DBChunkSize, 4, false, StorageCell},
		{"one past boundary segmented at 1.4", format.DBChunkSize + 1, 4, true, StorageSegmented},
		{"large direct at 1.3", 3 * format.DBChunkSize, 3, false, StorageCell},
		{"one past boundary direct at 1.3", format.DBChunkSize + 1, 3, false, StorageCell},
		{"small direct at 1.5", 100, 5, false, StorageCell},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := pattern(tt.size)
			h := hivegen.New(hivegen.WithMinorVersion(tt.minor))
			var off uint32
			if tt.segment {
				off = h.BigValue("JD", types.REG_BINARY, want)
			} else {
				off = h.CellValue("JD", types.REG_BINARY, want)
			}
			src := bytes.NewReader(h.Bytes())
			vk, err := hive.LoadValue(src, off)
			require.NoError(t, err)

			require.Equal(t, tt.want, Route(vk, tt.minor))
			got, err := Materialize(src, vk, tt.minor)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMaterializeSegments(t *testing.T) {
	want := pattern(16345)
	h := hivegen.New(hivegen.WithMinorVersion(4))
	off := h.BigValue("JD", types.REG_BINARY, want, 8000, 8000, 345)
	src := bytes.NewReader(h.Bytes())
	vk, err := hive.LoadValue(src, off)
	require.NoError(t, err)

	got, err := Materialize(src, vk, 4)
	require.NoError(t, err)
	require.Len(t, got, 16345)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("data mismatch (-want +got):\n%s", diff)
	}
}

func TestMaterializeSegmentsTrimmed(t *testing.T) {
	data := pattern(20000)
	h := hivegen.New()
	db := h.DB(data)
	// Declare fewer bytes than the segments hold.
	off := h.VK("JD", types.REG_BINARY, 17000, db)
	src := bytes.NewReader(h.Bytes())
	vk, err := hive.LoadValue(src, off)
	require.NoError(t, err)

	got, err := Materialize(src, vk, 5)
	require.NoError(t, err)
	require.Equal(t, data[:17000], got)
}

func TestMaterializeSegmentsShort(t *testing.T) {
	h := hivegen.New()
	db := h.DB(pattern(17000))
	off := h.VK("JD", types.REG_BINARY, 20000, db)
	src := bytes.NewReader(h.Bytes())
	vk, err := hive.LoadValue(src, off)
	require.NoError(t, err)

	_, err = Materialize(src, vk, 5)
	require.ErrorIs(t, err, types.ErrTruncated)
}

func TestMaterializeCellErrors(t *testing.T) {
	h := hivegen.New()
	past := h.VK("JD", types.REG_BINARY, 64, 0x00FFFF00)
	huge := h.VK("JD", types.REG_BINARY, 0x7FFFFFFF, 0x20)
	empty := h.VK("JD", types.REG_BINARY, 0, format.InvalidOffset)
	src := bytes.NewReader(h.Bytes())

	for _, off := range []uint32{past, huge} {
		vk, err := hive.LoadValue(src, off)
		require.NoError(t, err)
		_, err = Materialize(src, vk, 3)
		require.ErrorIs(t, err, types.ErrTruncated)
	}

	vk, err := hive.LoadValue(src, empty)
	require.NoError(t, err)
	got, err := Materialize(src, vk, 5)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestMaterializeBadDBTag(t *testing.T) {
	h := hivegen.New()
	notDB := h.Cell(make([]byte, 16))
	off := h.VK("JD", types.REG_BINARY, format.DBChunkSize+1, notDB)
	src := bytes.NewReader(h.Bytes())
	vk, err := hive.LoadValue(src, off)
	require.NoError(t, err)

	_, err = Materialize(src, vk, 4)
	require.ErrorIs(t, err, types.ErrMalformedRecord)
}

func TestStorageString(t *testing.T) {
	require.Equal(t, "inline", StorageInline.String())
	require.Equal(t, "cell", StorageCell.String())
	require.Equal(t, "segmented", StorageSegmented.String())
	require.Equal(t, "unknown", Storage(0).String())
}
