package codec

import (
	"fmt"

	"github.com/nickdarling94/tsfile/bitstream"
)

// PackedRecordCodec adapts a CompositeCodec of stateless, fixed-width
// fields (IntField only) into a uniform.RecordCodec[T]/indexed.RecordCodec[T]:
// a fixed RecordSize plus an Encode/Decode pair with no error return, safe
// for the file engine's arbitrary-offset random access.
//
// FloatField and TimestampField cannot be used here: their delta encoders
// carry running-sum state across items in a block, so decoding record N in
// isolation would need records 0..N-1 to have been decoded first, which a
// fixed-size ReadRange/ReadByOrdinal call does not guarantee. PackedRecordCodec
// instead encodes every record as its own one-item CompositeCodec block, so
// every record packs tighter than its raw field width (no per-field byte
// alignment) while staying independently decodable.
type PackedRecordCodec[T any] struct {
	composite  *CompositeCodec[T]
	recordSize int32
}

// NewPackedRecordCodec builds a PackedRecordCodec from fields, whose
// combined bit width (as declared via each field's IntField width) is
// widthBits. A one-item block also carries a single-byte item-count prefix
// (CompositeCodec.EncodeBlock's varint header, always one byte for a count
// of 1), so RecordSize is ceil((widthBits+8)/8).
//
// widthBits only sets RecordSize; the codec does not compare it with the
// member IntField widths. Encode panics when the item-count byte plus the
// members' bits do not fit in RecordSize bytes, and Decode panics when src
// runs out of bits the same way. A widthBits larger than the members'
// total, or smaller by less than the padding to the next whole byte, does
// not panic: the record just carries unused bits.
func NewPackedRecordCodec[T any](widthBits int, fields ...Field[T]) *PackedRecordCodec[T] {
	return &PackedRecordCodec[T]{
		composite:  NewCompositeCodec(fields...),
		recordSize: int32((widthBits + 8 + 7) / 8),
	}
}

// RecordSize returns the fixed byte width of one packed record.
func (c *PackedRecordCodec[T]) RecordSize() int32 { return c.recordSize }

// Encode packs item into dst's first RecordSize bytes.
func (c *PackedRecordCodec[T]) Encode(item T, dst []byte) {
	w := bitstream.NewWriter(int(c.recordSize))
	if err := c.composite.EncodeBlock(w, []T{item}); err != nil {
		panic(fmt.Sprintf("codec: packed record codec misconfigured: %v", err))
	}
	copy(dst, w.Bytes())
}

// Decode unpacks one record from src's first RecordSize bytes.
func (c *PackedRecordCodec[T]) Decode(src []byte) T {
	r := bitstream.NewReader(src)
	items, err := c.composite.DecodeBlock(r)
	if err != nil {
		panic(fmt.Sprintf("codec: packed record codec misconfigured: %v", err))
	}

	return items[0]
}
