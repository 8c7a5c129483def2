// Package apperr defines the error type used across the application
package apperr

import "fmt"

// Error is a sentinel application error. Message may contain fmt verbs
// which are filled in through Fmt.
type Error struct {
	Cause    error
	sentinel *Error
	Message  string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Fmt returns a copy of the error with its message verbs substituted.
// The copy remains matchable against the sentinel with errors.Is.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message:  fmt.Sprintf(e.Message, args...),
		Cause:    e.Cause,
		sentinel: e.root(),
	}
}

// Wrap returns a copy of the error that records an underlying cause.
func (e *Error) Wrap(cause error) *Error {
	return &Error{
		Message:  e.Message,
		Cause:    cause,
		sentinel: e.root(),
	}
}

func (e *Error) root() *Error {
	if e.sentinel != nil {
		return e.sentinel
	}

	return e
}

// Is reports whether target is this error or the sentinel it was derived
// from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.root() == t.root()
}
