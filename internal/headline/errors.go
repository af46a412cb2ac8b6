// internal/headline/errors.go
//
// Error kinds surfaced by the headline core.
//
// Context
// -------
// Every failure the core reports falls into one of three kinds:
//
//   - ErrInvalidParameter  – page or size out of range, search term too
//     short, page beyond the last page, or an empty result page.
//   - ErrNotFound          – no headline with the requested ID.
//   - ErrInconsistentState – the grouping query returned more rows than
//     there are category flags.
//
// The concrete *Error carries the user-facing message and unwraps to its
// kind, so boundaries branch with errors.Is and print err.Error() as-is.
//
// Notes
// -----
// • Messages are German because they are shown to end users verbatim.
// • None of these are retried; all are deterministic.
package headline

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrNotFound          = errors.New("not found")
	ErrInconsistentState = errors.New("inconsistent state")
)

// Error is a user-facing failure of a known kind.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Kind }

func invalidParameter(format string, args ...any) error {
	return &Error{Kind: ErrInvalidParameter, Msg: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Msg: fmt.Sprintf(format, args...)}
}

func inconsistentState(format string, args ...any) error {
	return &Error{Kind: ErrInconsistentState, Msg: fmt.Sprintf(format, args...)}
}
