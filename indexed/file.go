package indexed

import (
	"cmp"
	"fmt"
	"os"

	"github.com/nickdarling94/tsfile/engine"
	"github.com/nickdarling94/tsfile/errs"
	"github.com/nickdarling94/tsfile/header"
	"github.com/nickdarling94/tsfile/internal/options"
	"github.com/nickdarling94/tsfile/typesig"
)

// RecordCodec moves a fixed-size value of type T to and from its raw
// on-disk byte representation.
type RecordCodec[T any] interface {
	RecordSize() int32
	Encode(item T, dst []byte)
	Decode(src []byte) T
}

// File is an indexed file of records of type T, ordered by an embedded
// index field of type I.
type File[T any, I cmp.Ordered] struct {
	eng      *engine.FileEngine
	codec    RecordCodec[T]
	indexOf  func(T) I
	sub      *subheader
	lastIdx  I
	haveLast bool
}

// Create creates a new indexed file at path. spec describes T's field
// layout for the persisted type signature; indexOf extracts the index
// field from a decoded record.
func Create[T any, I cmp.Ordered](path string, spec typesig.FieldSpec, codec RecordCodec[T], indexOf func(T) I, opts ...Option) (*File[T, I], error) {
	cfg := &fileConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	sub := &subheader{recordSize: codec.RecordSize(), spec: spec}

	headerLength, err := header.CreateFile(path, codec.RecordSize(), spec.Name, spec.TypeTag, sub, cfg.createOpts...)
	if err != nil {
		return nil, err
	}

	eng, err := engine.Create(path, headerLength, codec.RecordSize(), engine.StrictAppend{}, cfg.openOpts...)
	if err != nil {
		return nil, err
	}

	return &File[T, I]{eng: eng, codec: codec, indexOf: indexOf, sub: sub}, nil
}

// Open opens an existing indexed file at path, verifying its persisted
// type signature against spec (optionally remapped via typeMap).
func Open[T any, I cmp.Ordered](path string, mode int, spec typesig.FieldSpec, typeMap typesig.TypeMap, codec RecordCodec[T], indexOf func(T) I, opts ...Option) (*File[T, I], error) {
	cfg := &fileConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("indexed: open %s: %w", path, err)
	}

	sub := &subheader{recordSize: codec.RecordSize(), spec: spec, typeMap: typeMap}
	parsed, err := header.OpenFile(f, sub)
	_ = f.Close()
	if err != nil {
		return nil, err
	}

	eng, err := engine.Open(path, mode, parsed, engine.StrictAppend{}, cfg.openOpts...)
	if err != nil {
		return nil, err
	}

	x := &File[T, I]{eng: eng, codec: codec, indexOf: indexOf, sub: sub}
	if eng.Count() > 0 {
		last, err := x.readOne(eng.Count() - 1)
		if err != nil {
			_ = eng.Close()
			return nil, err
		}
		x.lastIdx = indexOf(last)
		x.haveLast = true
	}

	return x, nil
}

// Count returns the current number of records.
func (x *File[T, I]) Count() int64 { return x.eng.Count() }

func (x *File[T, I]) readOne(ordinal int64) (T, error) {
	var zero T
	recordSize := int64(x.codec.RecordSize())

	buf := make([]byte, recordSize)
	if err := x.eng.ReadRange(ordinal, 1, buf); err != nil {
		return zero, err
	}

	return x.codec.Decode(buf), nil
}

// Append adds items to the end of the file. The index sequence formed by
// the existing tail and the new items must be non-decreasing; equal-index
// runs are permitted.
func (x *File[T, I]) Append(items []T) error {
	if len(items) == 0 {
		return nil
	}

	prev, havePrev := x.lastIdx, x.haveLast
	for _, item := range items {
		v := x.indexOf(item)
		if havePrev && v < prev {
			return fmt.Errorf("indexed: %w: index %v precedes previous index %v", errs.ErrIndexNonMonotonic, v, prev)
		}
		prev, havePrev = v, true
	}

	recordSize := int64(x.codec.RecordSize())
	buf := make([]byte, int64(len(items))*recordSize)
	for i, item := range items {
		x.codec.Encode(item, buf[int64(i)*recordSize:])
	}

	if err := x.eng.AppendRange(x.eng.Count(), int64(len(items)), buf); err != nil {
		return err
	}

	x.lastIdx, x.haveLast = prev, true

	return nil
}

// ReadByOrdinal reads count items starting at ordinal firstOrdinal.
func (x *File[T, I]) ReadByOrdinal(firstOrdinal, count int64) ([]T, error) {
	recordSize := int64(x.codec.RecordSize())
	buf := make([]byte, count*recordSize)
	if err := x.eng.ReadRange(firstOrdinal, count, buf); err != nil {
		return nil, err
	}

	items := make([]T, count)
	for i := range items {
		items[i] = x.codec.Decode(buf[int64(i)*recordSize:])
	}

	return items, nil
}

// Search implements the canonical binary-search contract over [0, Count()):
// for a present index it returns the smallest ordinal carrying that index;
// for an absent index it returns the bitwise complement (^insertionPoint)
// of where it would be inserted.
func (x *File[T, I]) Search(target I) (int64, error) {
	lo, hi := int64(0), x.eng.Count()
	for lo < hi {
		mid := lo + (hi-lo)/2

		item, err := x.readOne(mid)
		if err != nil {
			return 0, err
		}

		if x.indexOf(item) < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	if lo < x.eng.Count() {
		item, err := x.readOne(lo)
		if err != nil {
			return 0, err
		}
		if x.indexOf(item) == target {
			return lo, nil
		}
	}

	return ^lo, nil
}

func ordinalFromSearch(result int64) int64 {
	if result < 0 {
		return ^result
	}

	return result
}

// RangeByIndex resolves [fromIndex, toIndex) to an ordinal range via two
// searches.
func (x *File[T, I]) RangeByIndex(fromIndex, toIndex I) (firstOrdinal, count int64, err error) {
	r1, err := x.Search(fromIndex)
	if err != nil {
		return 0, 0, err
	}
	r2, err := x.Search(toIndex)
	if err != nil {
		return 0, 0, err
	}

	lo := ordinalFromSearch(r1)
	hi := ordinalFromSearch(r2)
	if hi < lo {
		hi = lo
	}

	return lo, hi - lo, nil
}

// Truncate reduces the file to newCount records.
func (x *File[T, I]) Truncate(newCount int64) error {
	if err := x.eng.Truncate(newCount); err != nil {
		return err
	}

	x.haveLast = false
	if newCount > 0 {
		last, err := x.readOne(newCount - 1)
		if err != nil {
			return err
		}
		x.lastIdx, x.haveLast = x.indexOf(last), true
	}

	return nil
}

// Close flushes and releases the file handle.
func (x *File[T, I]) Close() error {
	return x.eng.Close()
}
