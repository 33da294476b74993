package ext

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownUnit is returned when a name has no registered unit.
	ErrUnknownUnit = errors.New("ext: unknown unit")

	// ErrUnknownOp is returned when a loaded unit has no such operation.
	ErrUnknownOp = errors.New("ext: unknown operation")

	// ErrArity is returned by the binding layer when an operation is
	// invoked with the wrong number of arguments. Unit handlers never
	// see the call.
	ErrArity = errors.New("ext: wrong argument count")

	// ErrNotLoaded is returned when an operation is invoked on a unit
	// that has not been loaded into the host.
	ErrNotLoaded = errors.New("ext: unit not loaded")
)

// InitError wraps a failure during unit initialization. Loads are not
// retried; the failure propagates to whoever asked for the load.
type InitError struct {
	Unit string
	Err  error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("ext: initializing unit %s: %v", e.Unit, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }
