// Package tsfile provides an embedded storage engine for append-oriented,
// fixed-schema time-series files.
//
// Two file kinds share one on-disk header framing and the same
// bounds-checked fixed-size-record engine underneath:
//
//   - Uniform files (package uniform) address records by a time origin T0
//     plus a fixed step Δ: every ordinal maps to exactly one timestamp and
//     vice versa, so there is no index stored per record.
//   - Indexed files (package indexed) store an explicit, monotonically
//     non-decreasing index field per record and locate ranges with a
//     canonical binary search.
//
// This package is a thin top-level convenience wrapper around uniform and
// indexed for callers who don't need the per-package options. For
// compressed per-field encoding (codec.PackedRecordCodec, built on codec
// and bitstream) or streaming reads over large ranges (streamio), use
// those packages directly alongside uniform/indexed.
package tsfile

import (
	"cmp"

	"github.com/nickdarling94/tsfile/indexed"
	"github.com/nickdarling94/tsfile/typesig"
	"github.com/nickdarling94/tsfile/uniform"
)

// UniformFile is a uniform-time-stepped file of records of type T.
type UniformFile[T any] struct {
	f *uniform.File[T]
}

// CreateUniform creates a new uniform file at path with origin t0 and step
// delta, both in 100ns ticks.
func CreateUniform[T any](path string, t0, delta int64, tag string, codec uniform.RecordCodec[T], opts ...uniform.Option) (*UniformFile[T], error) {
	f, err := uniform.Create(path, t0, delta, tag, codec, opts...)
	if err != nil {
		return nil, err
	}

	return &UniformFile[T]{f: f}, nil
}

// OpenUniform opens an existing uniform file at path for the given
// os.O_RDONLY / os.O_RDWR mode.
func OpenUniform[T any](path string, mode int, codec uniform.RecordCodec[T], opts ...uniform.Option) (*UniformFile[T], error) {
	f, err := uniform.Open(path, mode, codec, opts...)
	if err != nil {
		return nil, err
	}

	return &UniformFile[T]{f: f}, nil
}

// T0 returns the file's origin timestamp, in ticks.
func (u *UniformFile[T]) T0() int64 { return u.f.T0() }

// Delta returns the file's step, in ticks.
func (u *UniformFile[T]) Delta() int64 { return u.f.Delta() }

// Count returns the current number of records.
func (u *UniformFile[T]) Count() int64 { return u.f.Count() }

// IndexToOrdinal translates a timestamp to its ordinal.
func (u *UniformFile[T]) IndexToOrdinal(t int64) (int64, error) { return u.f.IndexToOrdinal(t) }

// OrdinalToIndex translates an ordinal to its timestamp.
func (u *UniformFile[T]) OrdinalToIndex(n int64) int64 { return u.f.OrdinalToIndex(n) }

// Append writes items starting at ordinal firstOrdinal.
func (u *UniformFile[T]) Append(firstOrdinal int64, items []T) error {
	return u.f.Append(firstOrdinal, items)
}

// ReadByOrdinal reads count items starting at ordinal firstOrdinal.
func (u *UniformFile[T]) ReadByOrdinal(firstOrdinal, count int64) ([]T, error) {
	return u.f.ReadByOrdinal(firstOrdinal, count)
}

// ReadByIndex reads items whose timestamps fall in [fromInclusive, toExclusive).
func (u *UniformFile[T]) ReadByIndex(fromInclusive, toExclusive int64) ([]T, error) {
	return u.f.ReadByTimestamp(fromInclusive, toExclusive)
}

// Truncate reduces the file to newCount records.
func (u *UniformFile[T]) Truncate(newCount int64) error { return u.f.Truncate(newCount) }

// Close flushes and releases the file handle.
func (u *UniformFile[T]) Close() error { return u.f.Close() }

// Underlying exposes the wrapped uniform.File for callers that need
// ResolveRange, FirstUnavailableTimestamp, or streamio.Range.
func (u *UniformFile[T]) Underlying() *uniform.File[T] { return u.f }

// IndexedFile is an indexed file of records of type T, ordered by an
// embedded index field of type I.
type IndexedFile[T any, I cmp.Ordered] struct {
	f *indexed.File[T, I]
}

// CreateIndexed creates a new indexed file at path. spec describes T's
// field layout for the persisted type signature; indexOf extracts the
// index field from a decoded record.
func CreateIndexed[T any, I cmp.Ordered](path string, spec typesig.FieldSpec, codec indexed.RecordCodec[T], indexOf func(T) I, opts ...indexed.Option) (*IndexedFile[T, I], error) {
	f, err := indexed.Create(path, spec, codec, indexOf, opts...)
	if err != nil {
		return nil, err
	}

	return &IndexedFile[T, I]{f: f}, nil
}

// OpenIndexed opens an existing indexed file at path, verifying its
// persisted type signature against spec (optionally remapped via typeMap).
func OpenIndexed[T any, I cmp.Ordered](path string, mode int, spec typesig.FieldSpec, typeMap typesig.TypeMap, codec indexed.RecordCodec[T], indexOf func(T) I, opts ...indexed.Option) (*IndexedFile[T, I], error) {
	f, err := indexed.Open(path, mode, spec, typeMap, codec, indexOf, opts...)
	if err != nil {
		return nil, err
	}

	return &IndexedFile[T, I]{f: f}, nil
}

// Count returns the current number of records.
func (x *IndexedFile[T, I]) Count() int64 { return x.f.Count() }

// Append adds items to the end of the file.
func (x *IndexedFile[T, I]) Append(items []T) error { return x.f.Append(items) }

// ReadByOrdinal reads count items starting at ordinal firstOrdinal.
func (x *IndexedFile[T, I]) ReadByOrdinal(firstOrdinal, count int64) ([]T, error) {
	return x.f.ReadByOrdinal(firstOrdinal, count)
}

// ReadByIndex reads items whose index falls in [fromIndex, toIndex).
func (x *IndexedFile[T, I]) ReadByIndex(fromIndex, toIndex I) ([]T, error) {
	firstOrdinal, count, err := x.f.RangeByIndex(fromIndex, toIndex)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	return x.f.ReadByOrdinal(firstOrdinal, count)
}

// Search implements the canonical binary-search contract: for a present
// index it returns the smallest ordinal carrying that index; for an
// absent index it returns the bitwise complement of where it would be
// inserted.
func (x *IndexedFile[T, I]) Search(target I) (int64, error) { return x.f.Search(target) }

// Truncate reduces the file to newCount records.
func (x *IndexedFile[T, I]) Truncate(newCount int64) error { return x.f.Truncate(newCount) }

// Close flushes and releases the file handle.
func (x *IndexedFile[T, I]) Close() error { return x.f.Close() }

// Underlying exposes the wrapped indexed.File for callers that need
// streamio.Range.
func (x *IndexedFile[T, I]) Underlying() *indexed.File[T, I] { return x.f }
