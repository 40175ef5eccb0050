package engine

import (
	"fmt"

	"github.com/nickdarling94/tsfile/errs"
)

// AppendPolicy validates the first ordinal of an incoming append against
// the engine's current record count, capturing the one behavioral
// difference between indexed files (strict append) and uniform files
// (tail overwrite allowed).
type AppendPolicy interface {
	ValidateAppend(firstOrdinal, count int64) error
}

// StrictAppend requires firstOrdinal == count: every append lands exactly
// at the current end of the file. Used by indexed files, where the index
// field itself (not the ordinal) carries the monotonicity contract.
type StrictAppend struct{}

// ValidateAppend implements AppendPolicy.
func (StrictAppend) ValidateAppend(firstOrdinal, count int64) error {
	if firstOrdinal != count {
		return fmt.Errorf("engine: %w: append at ordinal %d, file has %d records", errs.ErrStateInvalid, firstOrdinal, count)
	}

	return nil
}

// OverwriteTail allows firstOrdinal <= count: writes inside the existing
// body overwrite in place, writes starting at count extend it. Used by
// uniform files, where T0+Δ addressing makes any ordinal within range a
// legal write target.
type OverwriteTail struct{}

// ValidateAppend implements AppendPolicy.
func (OverwriteTail) ValidateAppend(firstOrdinal, count int64) error {
	if firstOrdinal > count {
		return fmt.Errorf("engine: %w: append at ordinal %d leaves a gap before count %d", errs.ErrStateInvalid, firstOrdinal, count)
	}
	if firstOrdinal < 0 {
		return fmt.Errorf("engine: %w: negative ordinal %d", errs.ErrStateInvalid, firstOrdinal)
	}

	return nil
}
