package observe

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Error codes carried by Error.Code. Tags derived from them are stable
// across builds, so they can be logged or shipped over the wire.
const (
	CodeClosed         = "closed"
	CodeObserverClosed = "observer_closed"
	CodeLoading        = "loading"
	CodeNoValue        = "no_value"
)

var (
	// ErrClosed is returned when a subject that already errored or
	// completed is asked to do anything else.
	ErrClosed = errors.New("subject is closed")

	// ErrObserverClosed is returned by Subscribe when the observer itself
	// reports closed.
	ErrObserverClosed = errors.New("observer is closed")

	// ErrLoading is returned when reading a state that has not settled on
	// a first value yet.
	ErrLoading = errors.New("state is still loading")

	// ErrNoValue is returned by store mutators that need a current value
	// to transform.
	ErrNoValue = errors.New("no current value")

	// ErrFailed stands in for a nil reason passed to Error, so consumers
	// always observe a non-nil failure.
	ErrFailed = errors.New("subject failed")
)

// Error is the structured failure raised for contract violations: a
// machine-readable code, the operation that was refused and the matching
// sentinel. Upstream failures are never wrapped in it; they pass through
// verbatim.
type Error struct {
	Code string
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Tag returns the stable numeric form of the code.
func (e *Error) Tag() uint64 { return Tag(e.Code) }

// Tag derives a stable numeric identifier for an error code. It is a
// pure function of the code string, so tags survive restarts and can be
// compared across processes.
func Tag(code string) uint64 {
	return xxhash.Sum64String(code)
}

// CodeOf extracts the code from err, or "" when err carries none.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func newErr(op, code string, sentinel error) error {
	return &Error{Code: code, Op: op, Err: sentinel}
}
