package codec

import (
	"github.com/nickdarling94/tsfile/bitstream"
)

// TimestampEncoder is MultipliedDeltaEncoder specialized for already-integral
// tick counts: multiplier 1, no rounding, running-sum signed-varint delta.
type TimestampEncoder struct {
	prev    int64
	started bool
}

// NewTimestampEncoder creates a timestamp (tick) delta encoder.
func NewTimestampEncoder() *TimestampEncoder {
	return &TimestampEncoder{}
}

// EncodeItem encodes one tick count.
func (e *TimestampEncoder) EncodeItem(w *bitstream.Writer, ticks int64) error {
	if !e.started {
		if err := w.WriteSignedVarint(ticks); err != nil {
			return err
		}
		e.started = true
		e.prev = ticks

		return nil
	}

	delta := ticks - e.prev
	if err := w.WriteSignedVarint(delta); err != nil {
		return err
	}
	e.prev = ticks

	return nil
}

// Reset clears the running-sum state.
func (e *TimestampEncoder) Reset() {
	e.started = false
	e.prev = 0
}

// TimestampDecoder reconstructs tick counts written by TimestampEncoder.
type TimestampDecoder struct {
	prev    int64
	started bool
}

// NewTimestampDecoder creates a matching decoder.
func NewTimestampDecoder() *TimestampDecoder {
	return &TimestampDecoder{}
}

// DecodeItem decodes the next tick count.
func (d *TimestampDecoder) DecodeItem(r *bitstream.Reader) (int64, error) {
	v, err := r.ReadSignedVarint()
	if err != nil {
		return 0, err
	}

	if !d.started {
		d.started = true
		d.prev = v
	} else {
		d.prev += v
	}

	return d.prev, nil
}

// Reset clears the running-sum state.
func (d *TimestampDecoder) Reset() {
	d.started = false
	d.prev = 0
}
