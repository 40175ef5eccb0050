package rawio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nickdarling94/tsfile/errs"
)

func tempFile(t *testing.T) *os.File {
	t.Helper()

	f, err := os.Create(filepath.Join(t.TempDir(), "rawio.dat"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	return f
}

func TestStreamWriteReadAt_RoundTrip(t *testing.T) {
	f := tempFile(t)

	want := []byte("hello, record")
	require.NoError(t, StreamWriteAt(f, want, 16))

	got := make([]byte, len(want))
	require.NoError(t, StreamReadAt(f, got, 16))
	require.Equal(t, want, got)
}

func TestStreamReadAt_ShortTransfer(t *testing.T) {
	f := tempFile(t)
	require.NoError(t, StreamWriteAt(f, []byte("short"), 0))

	got := make([]byte, 32)
	err := StreamReadAt(f, got, 0)
	require.ErrorIs(t, err, errs.ErrShortTransfer)
}

func TestAppendStream_GrowsFromCurrentSize(t *testing.T) {
	f := tempFile(t)

	off1, err := AppendStream(f, []byte("aaaa"))
	require.NoError(t, err)
	require.Equal(t, int64(0), off1)

	off2, err := AppendStream(f, []byte("bb"))
	require.NoError(t, err)
	require.Equal(t, int64(4), off2)

	info, err := f.Stat()
	require.NoError(t, err)
	require.Equal(t, int64(6), info.Size())
}

func TestMapping_ReadWriteRange(t *testing.T) {
	f := tempFile(t)
	require.NoError(t, StreamWriteAt(f, make([]byte, 64), 0))

	m, err := Map(f, 64)
	require.NoError(t, err)
	defer func() { require.NoError(t, m.Close()) }()

	m.WriteRange(8, []byte("payload!"))

	got := make([]byte, 8)
	m.ReadRange(8, got)
	require.Equal(t, []byte("payload!"), got)
}
