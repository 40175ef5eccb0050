package codec

import (
	"github.com/nickdarling94/tsfile/bitstream"
	"github.com/nickdarling94/tsfile/errs"
)

// PrimitiveEncoder writes fixed-width raw bits with no transformation,
// for fields that don't benefit from delta compression.
type PrimitiveEncoder struct {
	width int
}

// NewPrimitiveEncoder creates an encoder writing values as width-bit two's
// complement integers.
func NewPrimitiveEncoder(width int) *PrimitiveEncoder {
	return &PrimitiveEncoder{width: width}
}

// EncodeItem writes value as width raw bits. Returns
// errs.ErrCodecPrecisionLoss if value doesn't fit in width bits.
func (e *PrimitiveEncoder) EncodeItem(w *bitstream.Writer, value int64) error {
	if !fitsSignedWidth(value, e.width) {
		return errs.ErrCodecPrecisionLoss
	}

	return w.WriteBits(uint64(value)&mask(e.width), e.width)
}

// Reset is a no-op; PrimitiveEncoder carries no running state.
func (e *PrimitiveEncoder) Reset() {}

// PrimitiveDecoder reads fixed-width raw bits written by PrimitiveEncoder.
type PrimitiveDecoder struct {
	width int
}

// NewPrimitiveDecoder creates a matching decoder.
func NewPrimitiveDecoder(width int) *PrimitiveDecoder {
	return &PrimitiveDecoder{width: width}
}

// DecodeItem reads the next width-bit value, sign-extended to int64.
func (d *PrimitiveDecoder) DecodeItem(r *bitstream.Reader) (int64, error) {
	bits, err := r.ReadBits(d.width)
	if err != nil {
		return 0, err
	}

	return signExtend(bits, d.width), nil
}

// Reset is a no-op; PrimitiveDecoder carries no running state.
func (d *PrimitiveDecoder) Reset() {}
