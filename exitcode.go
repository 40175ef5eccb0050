package tsfile

import (
	"errors"

	"github.com/nickdarling94/tsfile/errs"
)

// Exit codes for command-line front ends built on this package.
const (
	ExitSuccess             = 0
	ExitUsageError          = 2
	ExitSignatureMismatch   = 3
	ExitVersionIncompatible = 4
	ExitShortTransfer       = 5
	ExitIndexError          = 6
	ExitCodecPrecisionLoss  = 7
)

// ExitCode maps an error returned by this package to the process exit
// code a CLI front end should report. nil maps to ExitSuccess; an
// unrecognized error maps to ExitUsageError.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errs.ErrSignatureMismatch):
		return ExitSignatureMismatch
	case errors.Is(err, errs.ErrVersionIncompatible):
		return ExitVersionIncompatible
	case errors.Is(err, errs.ErrShortTransfer):
		return ExitShortTransfer
	case errors.Is(err, errs.ErrIndexMisaligned), errors.Is(err, errs.ErrIndexNonMonotonic):
		return ExitIndexError
	case errors.Is(err, errs.ErrCodecPrecisionLoss):
		return ExitCodecPrecisionLoss
	default:
		return ExitUsageError
	}
}
