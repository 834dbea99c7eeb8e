package domain

import "github.com/pkg/errors"

// Sentinel error kinds per the error handling design: the solver core never
// returns an error for ordinary unsolvability (that's SolveResult.ErrorMessage),
// only for contract violations by the caller.
var (
	// ErrInvalidArgument marks a construction-time contract violation:
	// non-square grid, dimension inconsistent with grid length, or an
	// out-of-range cell index/value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrParse marks a malformed adapter input: bad JSON, an unrecognized
	// grid shape, a length that isn't a perfect square. Unrecognized puzzle
	// characters are not reported with it: the JSON adapter reads them as
	// empty cells.
	ErrParse = errors.New("parse error")

	// ErrIO marks a file open/read/write failure in an adapter.
	ErrIO = errors.New("io failure")
)

// invalidArgf wraps ErrInvalidArgument with a formatted message, preserving
// errors.Is(err, ErrInvalidArgument) for callers.
func invalidArgf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}
