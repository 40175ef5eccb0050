package codec

import "github.com/nickdarling94/tsfile/bitstream"

// Field binds one named record field of type T to a member codec. Encode
// and Decode close over the field's accessor so CompositeCodec can treat
// heterogeneous field types uniformly.
type Field[T any] struct {
	Name   string
	encode func(w *bitstream.Writer, rec T) error
	decode func(r *bitstream.Reader, rec *T) error
	reset  func()
}

// FloatField binds a float64 field through a MultipliedDeltaEncoder/Decoder
// pair.
func FloatField[T any](name string, multiplier, divisor float64, width int, get func(T) float64, set func(*T, float64)) Field[T] {
	enc := NewMultipliedDeltaEncoder(multiplier, divisor, width)
	dec := NewMultipliedDeltaDecoder(multiplier, divisor)

	return Field[T]{
		Name: name,
		encode: func(w *bitstream.Writer, rec T) error {
			return enc.EncodeItem(w, get(rec))
		},
		decode: func(r *bitstream.Reader, rec *T) error {
			v, err := dec.DecodeItem(r)
			if err != nil {
				return err
			}
			set(rec, v)

			return nil
		},
		reset: func() {
			enc.Reset()
			dec.Reset()
		},
	}
}

// TimestampField binds an int64 tick field through a
// TimestampEncoder/Decoder pair.
func TimestampField[T any](name string, get func(T) int64, set func(*T, int64)) Field[T] {
	enc := NewTimestampEncoder()
	dec := NewTimestampDecoder()

	return Field[T]{
		Name: name,
		encode: func(w *bitstream.Writer, rec T) error {
			return enc.EncodeItem(w, get(rec))
		},
		decode: func(r *bitstream.Reader, rec *T) error {
			v, err := dec.DecodeItem(r)
			if err != nil {
				return err
			}
			set(rec, v)

			return nil
		},
		reset: func() {
			enc.Reset()
			dec.Reset()
		},
	}
}

// IntField binds an int64 field through a fixed-width PrimitiveEncoder/Decoder
// pair (no delta compression).
func IntField[T any](name string, width int, get func(T) int64, set func(*T, int64)) Field[T] {
	enc := NewPrimitiveEncoder(width)
	dec := NewPrimitiveDecoder(width)

	return Field[T]{
		Name: name,
		encode: func(w *bitstream.Writer, rec T) error {
			return enc.EncodeItem(w, get(rec))
		},
		decode: func(r *bitstream.Reader, rec *T) error {
			v, err := dec.DecodeItem(r)
			if err != nil {
				return err
			}
			set(rec, v)

			return nil
		},
		reset: func() {
			enc.Reset()
			dec.Reset()
		},
	}
}
