package indexed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nickdarling94/tsfile/endian"
	"github.com/nickdarling94/tsfile/errs"
	"github.com/nickdarling94/tsfile/typesig"
)

type tick struct {
	Seq int32
	Val int32
}

type tickCodec struct{}

func (tickCodec) RecordSize() int32 { return 8 }

func (tickCodec) Encode(item tick, dst []byte) {
	endian.Native().PutUint32(dst[0:4], uint32(item.Seq))
	endian.Native().PutUint32(dst[4:8], uint32(item.Val))
}

func (tickCodec) Decode(src []byte) tick {
	return tick{
		Seq: int32(endian.Native().Uint32(src[0:4])),
		Val: int32(endian.Native().Uint32(src[4:8])),
	}
}

func tickSpec() typesig.FieldSpec {
	return typesig.FieldSpec{
		Name:    "ticks",
		TypeTag: "indexed.tick",
		Fields: []typesig.FieldSpec{
			{Name: "Seq", TypeTag: "int32"},
			{Name: "Val", TypeTag: "int32"},
		},
	}
}

func seqOf(t tick) int32 { return t.Seq }

func TestAppendReadByOrdinal_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "indexed.tsf")

	f, err := Create[tick, int32](path, tickSpec(), tickCodec{}, seqOf)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, f.Append([]tick{{Seq: 10, Val: 1}, {Seq: 20, Val: 2}, {Seq: 20, Val: 3}}))
	require.NoError(t, f.Append([]tick{{Seq: 30, Val: 4}, {Seq: 40, Val: 5}}))
	require.Equal(t, int64(5), f.Count())

	got, err := f.ReadByOrdinal(0, 5)
	require.NoError(t, err)
	require.Equal(t, int32(10), got[0].Seq)
	require.Equal(t, int32(40), got[4].Seq)
}

func TestAppend_RejectsNonMonotonic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "indexed.tsf")

	f, err := Create[tick, int32](path, tickSpec(), tickCodec{}, seqOf)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, f.Append([]tick{{Seq: 10}, {Seq: 20}}))

	err = f.Append([]tick{{Seq: 15}})
	require.ErrorIs(t, err, errs.ErrIndexNonMonotonic)
}

// Scenario S3: indices [10, 20, 20, 30, 40]; search(20) -> 1; search(25) -> ~3.
func TestSearch_BinarySearchContract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "indexed.tsf")

	f, err := Create[tick, int32](path, tickSpec(), tickCodec{}, seqOf)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, f.Append([]tick{{Seq: 10}, {Seq: 20}, {Seq: 20}, {Seq: 30}, {Seq: 40}}))

	ord, err := f.Search(20)
	require.NoError(t, err)
	require.Equal(t, int64(1), ord)

	ord, err = f.Search(25)
	require.NoError(t, err)
	require.Equal(t, ^int64(3), ord)
}

func TestRangeByIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "indexed.tsf")

	f, err := Create[tick, int32](path, tickSpec(), tickCodec{}, seqOf)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, f.Append([]tick{{Seq: 10}, {Seq: 20}, {Seq: 20}, {Seq: 30}, {Seq: 40}}))

	lo, count, err := f.RangeByIndex(20, 40)
	require.NoError(t, err)
	require.Equal(t, int64(1), lo)
	require.Equal(t, int64(3), count)
}

func TestOpen_VerifiesSignatureAndResumesLastIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "indexed.tsf")

	f, err := Create[tick, int32](path, tickSpec(), tickCodec{}, seqOf)
	require.NoError(t, err)
	require.NoError(t, f.Append([]tick{{Seq: 10}, {Seq: 20}}))
	require.NoError(t, f.Close())

	reopened, err := Open[tick, int32](path, os.O_RDWR, tickSpec(), nil, tickCodec{}, seqOf)
	require.NoError(t, err)
	defer reopened.Close()

	require.Equal(t, int64(2), reopened.Count())

	// A new append continuing the prior index sequence must succeed...
	require.NoError(t, reopened.Append([]tick{{Seq: 20}}))
	// ...while one that regresses must still fail after reopen.
	err = reopened.Append([]tick{{Seq: 5}})
	require.ErrorIs(t, err, errs.ErrIndexNonMonotonic)
}

func TestOpen_RejectsSignatureMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "indexed.tsf")

	f, err := Create[tick, int32](path, tickSpec(), tickCodec{}, seqOf)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	badSpec := tickSpec()
	badSpec.Fields = badSpec.Fields[:1]

	_, err = Open[tick, int32](path, os.O_RDWR, badSpec, nil, tickCodec{}, seqOf)
	require.Error(t, err)
}
