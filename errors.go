package morph

import (
	"errors"
	"fmt"
)

var (
	// ErrSubPathIndex is returned when the subpath index lies outside one of
	// the paths.
	ErrSubPathIndex = errors.New("subpath index out of range")
	// ErrDegenerateSubPath is returned for subpaths with fewer than two
	// commands, which cannot be aligned meaningfully.
	ErrDegenerateSubPath = errors.New("subpath has fewer than two commands")
	// ErrLengthMismatch is returned by AutoConvert when the subpaths differ
	// in length.
	ErrLengthMismatch = errors.New("subpaths have different numbers of commands")
	// ErrIrreconcilable is returned in strict mode when some positions still
	// have incompatible kinds after conversion.
	ErrIrreconcilable = errors.New("subpaths have irreconcilable commands")
)

// ReconcileError records the operation and subpath that failed.
type ReconcileError struct {
	Op      string
	SubPath int
	Err     error
}

func (e *ReconcileError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s subpath %d: %v", e.Op, e.SubPath, e.Err)
}

func (e *ReconcileError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
