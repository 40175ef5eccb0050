// Package codec implements the composable per-field encoders and decoders
// that compress a block of fixed-schema records on top of package
// bitstream (spec §4.C).
//
// Four variants are provided:
//
//   - Primitive: raw fixed-width bits, no transformation.
//   - MultipliedDelta: a caller-supplied multiplier/divisor scales a
//     floating value to an integer domain, stored as a running-sum
//     signed-varint delta from the previous item.
//   - Timestamp: MultipliedDelta specialized for already-integral tick
//     counts (multiplier 1).
//   - Composite: binds named fields of a record type T to member codecs
//     and writes them in declared order, one block at a time. A block
//     commits atomically: if any member fails partway through, the whole
//     partial block is discarded and every member is reset, so the next
//     attempt starts a fresh block (the "restart with residual items"
//     behavior of the spec).
//
// This mirrors the teacher's ColumnarEncoder[T]/ColumnarDecoder[T] split
// (encoding/ts_delta.go, encoding/numeric_raw.go) with one structural
// difference: mebo is columnar (one encoder per metric, many metrics per
// blob) because it optimizes for many metrics with few points each; this
// package is row-interleaved (one encoder per field of a single record
// type, fields written in declared order per item) because a single
// fixed-schema record type is what's being compressed, not a column of
// independent metrics.
//
// PackedRecordCodec adapts a Composite of stateless fields (IntField only)
// into the fixed-size, random-access RecordCodec[T] shape that package
// uniform and package indexed require, by treating every record as its own
// one-item block.
package codec
