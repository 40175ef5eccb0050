// Package errs centralizes the sentinel errors returned by every layer of
// the file engine. Callers compare with errors.Is; nothing here is ever
// silently recovered internally (spec error-propagation policy).
package errs

import "errors"

var (
	// ErrInvalidHeaderSize is returned when a header image, subheader or
	// signature is shorter than its layout or recorded length requires, or
	// a recorded header length is below the minimum.
	ErrInvalidHeaderSize = errors.New("tsfile: invalid header size")
	// ErrInvalidMagicNumber is returned when the prefix magic signature
	// doesn't match.
	ErrInvalidMagicNumber = errors.New("tsfile: invalid magic number")

	// ErrSignatureMismatch is returned when the persisted type signature
	// disagrees with the in-memory record layout and no type map entry
	// authorizes the difference.
	ErrSignatureMismatch = errors.New("tsfile: type signature mismatch")

	// ErrVersionIncompatible is returned when a file's version isn't in
	// the set of versions this build knows how to read.
	ErrVersionIncompatible = errors.New("tsfile: incompatible file version")

	// ErrRecordSizeChanged is returned when the body length isn't an exact
	// multiple of the record size (spec §7's divisibility invariant), or
	// when a file's record size doesn't match the caller's codec on open.
	ErrRecordSizeChanged = errors.New("tsfile: record size changed")

	// ErrShortTransfer is returned when the OS returns fewer bytes than
	// requested from a read or write.
	ErrShortTransfer = errors.New("tsfile: short I/O transfer")

	// ErrIndexMisaligned is returned when a uniform-file timestamp doesn't
	// fall on a Δ boundary.
	ErrIndexMisaligned = errors.New("tsfile: index not aligned to step")

	// ErrIndexNonMonotonic is returned when an append would violate the
	// non-decreasing index invariant of an indexed file.
	ErrIndexNonMonotonic = errors.New("tsfile: index is not monotonically non-decreasing")

	// ErrTruncateGrow is returned when a truncate target exceeds the
	// current record count.
	ErrTruncateGrow = errors.New("tsfile: truncate target exceeds current count")

	// ErrCodecPrecisionLoss is returned when a multiplied-delta codec
	// cannot represent a value without loss at the configured width.
	ErrCodecPrecisionLoss = errors.New("tsfile: codec precision loss")

	// ErrUseAfterDispose is returned when an operation is attempted on a
	// closed file handle.
	ErrUseAfterDispose = errors.New("tsfile: use after dispose")

	// ErrStateInvalid is returned when an append's first ordinal violates
	// the file's append policy (a negative ordinal, a gap past the current
	// count, or, under strict append, any ordinal other than the count).
	ErrStateInvalid = errors.New("tsfile: invalid state transition")

	// ErrBlockFull is the bit stream's overflow signal: a write would
	// exceed the caller-declared block length.
	ErrBlockFull = errors.New("tsfile: bit stream block is full")

	// ErrOrdinalOutOfRange is returned when a requested ordinal range
	// falls outside [0, count).
	ErrOrdinalOutOfRange = errors.New("tsfile: ordinal out of range")

	// ErrInvalidStep is returned when a uniform file's Δ violates the
	// "Δ ≤ 1 day and TicksPerDay mod Δ == 0" invariant, or its T0 is not
	// aligned to Δ.
	ErrInvalidStep = errors.New("tsfile: invalid uniform time step")

	// ErrRecordSizeInvalid is returned when a record's declared size is
	// not positive, or when a negative reserved header byte count is given.
	ErrRecordSizeInvalid = errors.New("tsfile: invalid record size")

	// ErrNotOpenForWrite names a mutating call on a handle opened
	// read-only. No operation in this module returns it: such a call fails
	// with the wrapped OS error from the underlying write or truncate.
	ErrNotOpenForWrite = errors.New("tsfile: file not open for write")
)
