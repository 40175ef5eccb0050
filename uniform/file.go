package uniform

import (
	"fmt"
	"math"
	"os"

	"github.com/nickdarling94/tsfile/engine"
	"github.com/nickdarling94/tsfile/errs"
	"github.com/nickdarling94/tsfile/header"
	"github.com/nickdarling94/tsfile/internal/options"
)

// RecordCodec moves a fixed-size value of type T to and from its on-disk
// byte representation. Every record is encoded and decoded on its own, so
// there is no delta encoding across records at this layer; an
// implementation may still bit-pack a single record, as
// codec.PackedRecordCodec does.
type RecordCodec[T any] interface {
	RecordSize() int32
	Encode(item T, dst []byte)
	Decode(src []byte) T
}

// File is a uniform-time-stepped file of records of type T.
type File[T any] struct {
	eng   *engine.FileEngine
	codec RecordCodec[T]
	sub   *subheader
}

// Create creates a new uniform file at path with origin t0 and step delta
// (both in 100ns ticks), and opens it for append.
func Create[T any](path string, t0, delta int64, tag string, codec RecordCodec[T], opts ...Option) (*File[T], error) {
	if err := validateStep(t0, delta); err != nil {
		return nil, err
	}

	cfg := &fileConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	sub := &subheader{t0: t0, delta: delta}

	headerLength, err := header.CreateFile(path, codec.RecordSize(), tag, fmt.Sprintf("%T", *new(T)), sub, cfg.createOpts...)
	if err != nil {
		return nil, err
	}

	eng, err := engine.Create(path, headerLength, codec.RecordSize(), engine.OverwriteTail{}, cfg.openOpts...)
	if err != nil {
		return nil, err
	}

	return &File[T]{eng: eng, codec: codec, sub: sub}, nil
}

// Open opens an existing uniform file at path for the given os.O_RDONLY /
// os.O_RDWR mode.
func Open[T any](path string, mode int, codec RecordCodec[T], opts ...Option) (*File[T], error) {
	cfg := &fileConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("uniform: open %s: %w", path, err)
	}

	sub := &subheader{}
	parsed, err := header.OpenFile(f, sub)
	_ = f.Close()
	if err != nil {
		return nil, err
	}

	if parsed.RecordSize != codec.RecordSize() {
		return nil, fmt.Errorf("uniform: %w: file has record size %d, codec expects %d", errs.ErrRecordSizeChanged, parsed.RecordSize, codec.RecordSize())
	}

	eng, err := engine.Open(path, mode, parsed, engine.OverwriteTail{}, cfg.openOpts...)
	if err != nil {
		return nil, err
	}

	return &File[T]{eng: eng, codec: codec, sub: sub}, nil
}

func validateStep(t0, delta int64) error {
	if delta <= 0 || delta > TicksPerDay {
		return fmt.Errorf("uniform: %w: delta %d ticks", errs.ErrInvalidStep, delta)
	}
	if TicksPerDay%delta != 0 {
		return fmt.Errorf("uniform: %w: delta %d does not divide a day evenly", errs.ErrInvalidStep, delta)
	}
	if t0%delta != 0 {
		return fmt.Errorf("uniform: %w: t0 %d is not aligned to delta %d", errs.ErrInvalidStep, t0, delta)
	}

	return nil
}

// T0 returns the file's origin timestamp, in ticks.
func (u *File[T]) T0() int64 { return u.sub.t0 }

// Delta returns the file's step, in ticks.
func (u *File[T]) Delta() int64 { return u.sub.delta }

// Count returns the current number of records.
func (u *File[T]) Count() int64 { return u.eng.Count() }

// IndexToOrdinal translates a timestamp to its ordinal, failing with
// errs.ErrIndexMisaligned if t does not fall exactly on a Δ boundary.
func (u *File[T]) IndexToOrdinal(t int64) (int64, error) {
	offset := t - u.sub.t0
	if offset%u.sub.delta != 0 {
		return 0, fmt.Errorf("uniform: %w: timestamp %d, t0 %d, delta %d", errs.ErrIndexMisaligned, t, u.sub.t0, u.sub.delta)
	}

	return offset / u.sub.delta, nil
}

// OrdinalToIndex translates an ordinal to its timestamp.
func (u *File[T]) OrdinalToIndex(n int64) int64 {
	return u.sub.t0 + n*u.sub.delta
}

// FirstUnavailableTimestamp is the timestamp immediately past the last
// available record: T0 + count·Δ.
func (u *File[T]) FirstUnavailableTimestamp() int64 {
	return u.sub.t0 + u.eng.Count()*u.sub.delta
}

// ResolveRange rounds [fromInclusive, toExclusive) up to Δ boundaries,
// clips it to [T0, firstUnavailableTimestamp), and returns the
// corresponding [firstOrdinal, firstOrdinal+count) ordinal range. An empty
// clipped range, or one whose length would exceed int32.max, resolves to
// (0, 0); callers needing more must stream (spec §4.J).
func (u *File[T]) ResolveRange(fromInclusive, toExclusive int64) (firstOrdinal, count int64) {
	delta := u.sub.delta

	roundUp := func(t int64) int64 {
		offset := t - u.sub.t0
		rem := offset % delta
		if rem == 0 {
			return t
		}
		if rem < 0 {
			rem += delta
		}

		return t + (delta - rem)
	}

	from := roundUp(fromInclusive)
	to := roundUp(toExclusive)

	if from < u.sub.t0 {
		from = u.sub.t0
	}
	if unavail := u.FirstUnavailableTimestamp(); to > unavail {
		to = unavail
	}
	if to <= from {
		return 0, 0
	}

	length := (to - from) / delta
	if length > math.MaxInt32 {
		return 0, 0
	}

	return (from - u.sub.t0) / delta, length
}

// Append writes items starting at ordinal firstOrdinal, which must be
// `<= Count()`; writes past the current count extend the file.
func (u *File[T]) Append(firstOrdinal int64, items []T) error {
	buf := make([]byte, int64(len(items))*int64(u.codec.RecordSize()))
	for i, item := range items {
		u.codec.Encode(item, buf[int64(i)*int64(u.codec.RecordSize()):])
	}

	return u.eng.AppendRange(firstOrdinal, int64(len(items)), buf)
}

// ReadByOrdinal reads count items starting at ordinal firstOrdinal.
func (u *File[T]) ReadByOrdinal(firstOrdinal, count int64) ([]T, error) {
	recordSize := int64(u.codec.RecordSize())
	buf := make([]byte, count*recordSize)
	if err := u.eng.ReadRange(firstOrdinal, count, buf); err != nil {
		return nil, err
	}

	items := make([]T, count)
	for i := range items {
		items[i] = u.codec.Decode(buf[int64(i)*recordSize:])
	}

	return items, nil
}

// ReadByTimestamp resolves [fromInclusive, toExclusive) via ResolveRange
// and reads the corresponding records.
func (u *File[T]) ReadByTimestamp(fromInclusive, toExclusive int64) ([]T, error) {
	firstOrdinal, count := u.ResolveRange(fromInclusive, toExclusive)
	if count == 0 {
		return nil, nil
	}

	return u.ReadByOrdinal(firstOrdinal, count)
}

// Truncate reduces the file to newCount records.
func (u *File[T]) Truncate(newCount int64) error {
	return u.eng.Truncate(newCount)
}

// Close flushes and releases the file handle.
func (u *File[T]) Close() error {
	return u.eng.Close()
}
