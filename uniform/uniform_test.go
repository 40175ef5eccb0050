package uniform

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nickdarling94/tsfile/endian"
	"github.com/nickdarling94/tsfile/errs"
	"github.com/nickdarling94/tsfile/format"
)

type tick struct {
	I int32
}

type tickCodec struct{}

func (tickCodec) RecordSize() int32 { return 4 }

func (tickCodec) Encode(item tick, dst []byte) {
	endian.Native().PutUint32(dst, uint32(item.I))
}

func (tickCodec) Decode(src []byte) tick {
	return tick{I: int32(endian.Native().Uint32(src))}
}

const oneMinuteTicks = 60 * 10_000_000

// Scenario S1: create with T0=0 (arbitrary origin), Δ=1 minute; append 120
// records; read the [30min, 60min) window back.
func TestUniform_CreateAppendRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uniform.tsf")

	f, err := Create[tick](path, 0, oneMinuteTicks, "ticks", tickCodec{})
	require.NoError(t, err)
	defer f.Close()

	items := make([]tick, 120)
	for i := range items {
		items[i] = tick{I: int32(i)}
	}
	require.NoError(t, f.Append(0, items))
	require.Equal(t, int64(120), f.Count())

	got, err := f.ReadByTimestamp(30*oneMinuteTicks, 60*oneMinuteTicks)
	require.NoError(t, err)
	require.Len(t, got, 30)
	require.Equal(t, int32(30), got[0].I)
	require.Equal(t, int32(59), got[len(got)-1].I)
}

func TestIndexToOrdinal_OrdinalToIndex_Inverses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uniform.tsf")
	f, err := Create[tick](path, 0, oneMinuteTicks, "ticks", tickCodec{})
	require.NoError(t, err)
	defer f.Close()

	items := make([]tick, 10)
	require.NoError(t, f.Append(0, items))

	for n := int64(0); n < f.Count(); n++ {
		ts := f.OrdinalToIndex(n)
		ord, err := f.IndexToOrdinal(ts)
		require.NoError(t, err)
		require.Equal(t, n, ord)
	}
}

func TestIndexToOrdinal_RejectsMisalignment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uniform.tsf")
	f, err := Create[tick](path, 0, oneMinuteTicks, "ticks", tickCodec{})
	require.NoError(t, err)
	defer f.Close()

	_, err = f.IndexToOrdinal(oneMinuteTicks / 2)
	require.ErrorIs(t, err, errs.ErrIndexMisaligned)
}

func TestResolveRange_ClipsToAvailableWindow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uniform.tsf")
	f, err := Create[tick](path, 0, oneMinuteTicks, "ticks", tickCodec{})
	require.NoError(t, err)
	defer f.Close()

	items := make([]tick, 10)
	require.NoError(t, f.Append(0, items))

	firstOrdinal, count := f.ResolveRange(-5*oneMinuteTicks, 3*oneMinuteTicks)
	require.Equal(t, int64(0), firstOrdinal)
	require.Equal(t, int64(3), count)

	firstOrdinal, count = f.ResolveRange(8*oneMinuteTicks, 50*oneMinuteTicks)
	require.Equal(t, int64(8), firstOrdinal)
	require.Equal(t, int64(2), count)

	_, count = f.ResolveRange(20*oneMinuteTicks, 30*oneMinuteTicks)
	require.Equal(t, int64(0), count)
}

// Scenario S2: a v1.0 file's T0 is stored via .NET's DateTime.ToBinary,
// which sets the top two bits to the DateTimeKind flag; opening must strip
// those bits to recover the raw tick count.
func TestSubheader_V1_0_RecoversTicksFromDateTimeToBinary(t *testing.T) {
	const wantTicks = 637_012_224_000_000_000
	const utcKindBit = int64(1) << 62
	storedBinary := wantTicks | utcKindBit

	buf := make([]byte, 16)
	endian.Native().PutUint64(buf[0:8], uint64(oneMinuteTicks))
	endian.Native().PutUint64(buf[8:16], uint64(storedBinary))

	sub := &subheader{}
	require.NoError(t, sub.InitExisting(format.Legacy, buf))
	require.Equal(t, int64(wantTicks), sub.t0)
}

func TestCreate_RejectsInvalidStep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uniform.tsf")
	_, err := Create[tick](path, 1, oneMinuteTicks, "ticks", tickCodec{})
	require.ErrorIs(t, err, errs.ErrInvalidStep)
}
