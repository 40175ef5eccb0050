package engine

import (
	"fmt"
	"os"

	"github.com/nickdarling94/tsfile/errs"
	"github.com/nickdarling94/tsfile/header"
	"github.com/nickdarling94/tsfile/internal/options"
	"github.com/nickdarling94/tsfile/rawio"
)

// FileEngine is the common core of a tsfile file handle: it owns the OS
// file descriptor and the header-derived geometry (header length, record
// size, record count), and exposes bounds-checked byte-range read, append,
// and truncate operations. It carries no knowledge of what a record means.
type FileEngine struct {
	f            *os.File
	headerLength int64
	recordSize   int64
	count        int64
	policy       AppendPolicy
	disposed     bool

	mappedReads bool
	mapped      *rawio.Mapping
	mappedSize  int64
}

// Create opens a brand-new, zero-body file at path (the header must
// already have been written there by the header package) for read-write
// access.
func Create(path string, headerLength int, recordSize int32, policy AppendPolicy, opts ...OpenOption) (*FileEngine, error) {
	cfg := &openConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("engine: open %s: %w", path, err)
	}

	e := &FileEngine{
		f:            f,
		headerLength: int64(headerLength),
		recordSize:   int64(recordSize),
		count:        0,
		policy:       policy,
		mappedReads:  cfg.mappedReads,
	}
	if e.mappedReads {
		if err := e.ensureMapped(e.headerLength); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	return e, nil
}

// Open opens an existing file at path, computing the record count from the
// file's current size via the header package's divisibility check.
func Open(path string, mode int, parsed header.Parsed, policy AppendPolicy, opts ...OpenOption) (*FileEngine, error) {
	cfg := &openConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, mode, 0o644)
	if err != nil {
		return nil, fmt.Errorf("engine: open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("engine: stat %s: %w", path, err)
	}

	count, err := header.CheckBodyDivisibility(info.Size(), parsed.HeaderLength, parsed.RecordSize)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	e := &FileEngine{
		f:            f,
		headerLength: int64(parsed.HeaderLength),
		recordSize:   int64(parsed.RecordSize),
		count:        count,
		policy:       policy,
		mappedReads:  cfg.mappedReads,
	}
	if e.mappedReads {
		if err := e.ensureMapped(e.headerLength + e.count*e.recordSize); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	return e, nil
}

// ensureMapped grows the engine's Mapping, if one is in use, to cover at
// least requiredEnd bytes of the file. Mapping.Bytes is fixed-size at Map
// time (rawio/mapping_unix.go), so any read past its current extent needs a
// fresh one; a mapping only ever grows, never shrinks, since bytes already
// covered stay valid through truncate-then-regrow (same page-cache-backed
// file, just addressed through the existing slice).
func (e *FileEngine) ensureMapped(requiredEnd int64) error {
	if e.mapped != nil && requiredEnd <= e.mappedSize {
		return nil
	}

	if e.mapped != nil {
		if err := e.mapped.Close(); err != nil {
			return fmt.Errorf("engine: remap: %w", err)
		}
	}

	m, err := rawio.Map(e.f, int(requiredEnd))
	if err != nil {
		return err
	}

	e.mapped = m
	e.mappedSize = requiredEnd

	return nil
}

// Count returns the current number of records in the file body.
func (e *FileEngine) Count() int64 { return e.count }

// RecordSize returns the fixed byte width of one record.
func (e *FileEngine) RecordSize() int64 { return e.recordSize }

func (e *FileEngine) checkOpen() error {
	if e.disposed {
		return errs.ErrUseAfterDispose
	}

	return nil
}

func (e *FileEngine) offsetOf(ordinal int64) int64 {
	return e.headerLength + ordinal*e.recordSize
}

// ReadRange reads count records starting at firstOrdinal into dst, which
// must be exactly count*RecordSize() bytes.
func (e *FileEngine) ReadRange(firstOrdinal, count int64, dst []byte) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	if firstOrdinal < 0 || firstOrdinal+count > e.count {
		return fmt.Errorf("engine: %w: range [%d, %d) outside [0, %d)", errs.ErrOrdinalOutOfRange, firstOrdinal, firstOrdinal+count, e.count)
	}
	if int64(len(dst)) != count*e.recordSize {
		return fmt.Errorf("engine: dst is %d bytes, want %d", len(dst), count*e.recordSize)
	}

	offset := e.offsetOf(firstOrdinal)
	if e.mappedReads {
		if err := e.ensureMapped(offset + int64(len(dst))); err != nil {
			return err
		}
		e.mapped.ReadRange(int(offset), dst)

		return nil
	}

	return rawio.StreamReadAt(e.f, dst, offset)
}

// AppendRange writes count records starting at firstOrdinal from src,
// which must be exactly count*RecordSize() bytes. firstOrdinal is
// validated by the engine's AppendPolicy. On success the in-memory count
// reflects any extension of the file.
func (e *FileEngine) AppendRange(firstOrdinal, count int64, src []byte) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	if int64(len(src)) != count*e.recordSize {
		return fmt.Errorf("engine: src is %d bytes, want %d", len(src), count*e.recordSize)
	}
	if err := e.policy.ValidateAppend(firstOrdinal, e.count); err != nil {
		return err
	}

	if err := rawio.StreamWriteAt(e.f, src, e.offsetOf(firstOrdinal)); err != nil {
		return err
	}

	if end := firstOrdinal + count; end > e.count {
		e.count = end
	}

	return nil
}

// Truncate sets the file body to newCount records, failing with
// errs.ErrTruncateGrow if newCount exceeds the current count.
func (e *FileEngine) Truncate(newCount int64) error {
	if err := e.checkOpen(); err != nil {
		return err
	}
	if newCount > e.count {
		return fmt.Errorf("engine: %w: target %d exceeds current count %d", errs.ErrTruncateGrow, newCount, e.count)
	}

	if err := e.f.Truncate(e.headerLength + newCount*e.recordSize); err != nil {
		return fmt.Errorf("engine: truncate: %w", err)
	}
	e.count = newCount

	return nil
}

// Close flushes OS buffers and releases the file descriptor. It is
// idempotent: a second call returns nil without touching the OS handle
// again, and every subsequent operation fails with errs.ErrUseAfterDispose.
func (e *FileEngine) Close() error {
	if e.disposed {
		return nil
	}
	e.disposed = true

	if e.mapped != nil {
		if err := e.mapped.Close(); err != nil {
			_ = e.f.Close()
			return fmt.Errorf("engine: unmap: %w", err)
		}
	}

	if err := e.f.Sync(); err != nil {
		_ = e.f.Close()
		return fmt.Errorf("engine: sync: %w", err)
	}

	if err := e.f.Close(); err != nil {
		return fmt.Errorf("engine: close: %w", err)
	}

	return nil
}
