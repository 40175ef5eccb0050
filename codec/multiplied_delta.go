package codec

import (
	"math"

	"github.com/nickdarling94/tsfile/bitstream"
	"github.com/nickdarling94/tsfile/errs"
)

// MultipliedDeltaEncoder encodes a sequence of floating-point values as a
// running-sum signed-varint delta in a caller-chosen fixed-point integer
// domain: the first item is written in full (absolute), subsequent items
// as the delta from the previous item's encoded value.
//
// EncodeItem reports errs.ErrCodecPrecisionLoss when
// round(value*Multiplier/Divisor) does not fit in Width signed bits, or when
// the rounding itself loses information (the scaled integer does not decode
// back to exactly value). On that error the encoder's state is unchanged
// (the failing call itself never partially updates prev).
type MultipliedDeltaEncoder struct {
	multiplier float64
	divisor    float64
	width      int
	prev       int64
	started    bool
}

// NewMultipliedDeltaEncoder creates an encoder scaling by multiplier/divisor
// into a signed integer domain of width bits. Divisor of 0 is treated as 1.
func NewMultipliedDeltaEncoder(multiplier, divisor float64, width int) *MultipliedDeltaEncoder {
	if divisor == 0 {
		divisor = 1
	}

	return &MultipliedDeltaEncoder{multiplier: multiplier, divisor: divisor, width: width}
}

// EncodeItem scales and encodes one value.
func (e *MultipliedDeltaEncoder) EncodeItem(w *bitstream.Writer, value float64) error {
	scaled := int64(math.Round(value * e.multiplier / e.divisor))
	if !fitsSignedWidth(scaled, e.width) {
		return errs.ErrCodecPrecisionLoss
	}
	if float64(scaled)*e.divisor/e.multiplier != value {
		return errs.ErrCodecPrecisionLoss
	}

	if !e.started {
		if err := w.WriteSignedVarint(scaled); err != nil {
			return err
		}
		e.started = true
		e.prev = scaled

		return nil
	}

	delta := scaled - e.prev
	if err := w.WriteSignedVarint(delta); err != nil {
		return err
	}
	e.prev = scaled

	return nil
}

// Reset clears the running-sum state so the next EncodeItem call starts a
// fresh block, writing an absolute first value again.
func (e *MultipliedDeltaEncoder) Reset() {
	e.started = false
	e.prev = 0
}

// MultipliedDeltaDecoder reconstructs values written by
// MultipliedDeltaEncoder by maintaining the same running sum.
type MultipliedDeltaDecoder struct {
	multiplier float64
	divisor    float64
	prev       int64
	started    bool
}

// NewMultipliedDeltaDecoder creates a decoder matching the given
// multiplier/divisor. Divisor of 0 is treated as 1.
func NewMultipliedDeltaDecoder(multiplier, divisor float64) *MultipliedDeltaDecoder {
	if divisor == 0 {
		divisor = 1
	}

	return &MultipliedDeltaDecoder{multiplier: multiplier, divisor: divisor}
}

// DecodeItem decodes the next value from the running sum.
func (d *MultipliedDeltaDecoder) DecodeItem(r *bitstream.Reader) (float64, error) {
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

	return float64(d.prev) * d.divisor / d.multiplier, nil
}

// Reset clears the running-sum state.
func (d *MultipliedDeltaDecoder) Reset() {
	d.started = false
	d.prev = 0
}
