package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nickdarling94/tsfile/bitstream"
	"github.com/nickdarling94/tsfile/errs"
)

func TestMultipliedDelta_RoundTrip(t *testing.T) {
	values := []float64{1.2345, 1.2346, 1.2350, 0.9999}

	w := bitstream.NewWriter(256)
	enc := NewMultipliedDeltaEncoder(10000, 1, 32)
	for _, v := range values {
		require.NoError(t, enc.EncodeItem(w, v))
	}
	w.FinishBlock()

	r := bitstream.NewReader(w.Bytes())
	dec := NewMultipliedDeltaDecoder(10000, 1)
	for _, want := range values {
		got, err := dec.DecodeItem(r)
		require.NoError(t, err)
		require.InDelta(t, want, got, 1e-9)
	}
}

// Scenario S4: multiplier 1000 over [1.2345, 1.2346] overflows a narrow
// width; multiplier 10000 round-trips losslessly.
func TestMultipliedDelta_PrecisionLoss(t *testing.T) {
	w := bitstream.NewWriter(64)
	enc := NewMultipliedDeltaEncoder(1000, 1, 8)

	err := enc.EncodeItem(w, 1.2345)
	require.ErrorIs(t, err, errs.ErrCodecPrecisionLoss)
}

func TestMultipliedDelta_FailureLeavesStateUnchanged(t *testing.T) {
	w := bitstream.NewWriter(64)
	enc := NewMultipliedDeltaEncoder(1, 1, 8)

	require.NoError(t, enc.EncodeItem(w, 10))
	before := enc.prev

	err := enc.EncodeItem(w, 1000) // way out of 8-bit range
	require.ErrorIs(t, err, errs.ErrCodecPrecisionLoss)
	require.Equal(t, before, enc.prev, "failed encode must not mutate running state")
}

func TestTimestamp_RoundTrip(t *testing.T) {
	ticks := []int64{1000, 1000, 2000, 2000, 2001, 100000}

	w := bitstream.NewWriter(256)
	enc := NewTimestampEncoder()
	for _, v := range ticks {
		require.NoError(t, enc.EncodeItem(w, v))
	}
	w.FinishBlock()

	r := bitstream.NewReader(w.Bytes())
	dec := NewTimestampDecoder()
	for _, want := range ticks {
		got, err := dec.DecodeItem(r)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestPrimitive_RoundTrip(t *testing.T) {
	w := bitstream.NewWriter(64)
	enc := NewPrimitiveEncoder(16)
	require.NoError(t, enc.EncodeItem(w, -100))
	require.NoError(t, enc.EncodeItem(w, 32000))
	w.FinishBlock()

	r := bitstream.NewReader(w.Bytes())
	dec := NewPrimitiveDecoder(16)
	v, err := dec.DecodeItem(r)
	require.NoError(t, err)
	require.Equal(t, int64(-100), v)

	v, err = dec.DecodeItem(r)
	require.NoError(t, err)
	require.Equal(t, int64(32000), v)
}

type sample struct {
	TimestampUs int64
	Value       float64
	Flag        int64
}

func sampleFields() []Field[sample] {
	return []Field[sample]{
		TimestampField("ts", func(s sample) int64 { return s.TimestampUs }, func(s *sample, v int64) { s.TimestampUs = v }),
		FloatField("value", 1000, 1, 32, func(s sample) float64 { return s.Value }, func(s *sample, v float64) { s.Value = v }),
		IntField("flag", 8, func(s sample) int64 { return s.Flag }, func(s *sample, v int64) { s.Flag = v }),
	}
}

func TestComposite_RoundTrip(t *testing.T) {
	items := []sample{
		{TimestampUs: 1000, Value: 1.001, Flag: 0},
		{TimestampUs: 2000, Value: 1.002, Flag: 1},
		{TimestampUs: 3000, Value: 1.003, Flag: 1},
	}

	w := bitstream.NewWriter(1024)
	enc := NewCompositeCodec(sampleFields()...)
	require.NoError(t, enc.EncodeBlock(w, items))
	w.FinishBlock()

	r := bitstream.NewReader(w.Bytes())
	dec := NewCompositeCodec(sampleFields()...)
	got, err := dec.DecodeBlock(r)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, want := range items {
		require.Equal(t, want.TimestampUs, got[i].TimestampUs)
		require.Equal(t, want.Flag, got[i].Flag)
		require.InDelta(t, want.Value, got[i].Value, 1e-9)
	}
}

func TestComposite_FailureDiscardsWholeBlockAndResets(t *testing.T) {
	items := []sample{
		{TimestampUs: 1000, Value: 1.0, Flag: 0},
		{TimestampUs: 2000, Value: 99999.0, Flag: 1}, // Value scales to 99,999,000, which fits the 32-bit width
	}
	// Force a failure on the second item's Flag field (out of 8-bit range).
	items[1].Flag = 1000

	w := bitstream.NewWriter(256)
	checkpoint := w.Checkpoint()

	enc := NewCompositeCodec(sampleFields()...)
	err := enc.EncodeBlock(w, items)
	require.ErrorIs(t, err, errs.ErrCodecPrecisionLoss)
	require.Equal(t, checkpoint, w.Checkpoint())

	// After discard, a fresh block with valid items must succeed and start
	// with an absolute (non-delta) first value again.
	valid := []sample{{TimestampUs: 5000, Value: 2.0, Flag: 0}}
	require.NoError(t, enc.EncodeBlock(w, valid))
}
