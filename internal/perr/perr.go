// Package perr defines the typed error surface of the calculator: the
// Kind enum of spec error kinds, plus a single error struct carrying a
// Kind, a message, and the source location (within one REPL input line)
// the error was raised at, when known.
package perr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind names one of the calculator's error categories.
type Kind string

const (
	DigitOutOfRange  Kind = "DigitOutOfRange"
	MismatchedBase   Kind = "MismatchedBase"
	TooSmallBase     Kind = "TooSmallBase"
	NotInvertible    Kind = "NotInvertible"
	DivisionByZero   Kind = "DivisionByZero"
	ParseError       Kind = "ParseError"
	UnknownVariable  Kind = "UnknownVariable"
)

// Location is where, within one input line, an error was raised.
type Location struct {
	Line   string
	Column int
}

// Error is the calculator's error type: a Kind plus a human message and
// an optional Location within the offending input line.
type Error struct {
	Kind     Kind
	Message  string
	Location Location
	cause    error
}

func (e *Error) Error() string {
	if e.Location.Line != "" {
		return fmt.Sprintf("%s: %s (in %q)", e.Kind, e.Message, e.Location.Line)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

// New builds an Error with no further cause.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error that records cause (with a stack trace attached
// by github.com/pkg/errors.WithStack) as its underlying reason, reachable
// through Unwrap and so through errors.Is and errors.As.
func Wrap(cause error, kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), cause: errors.WithStack(cause)}
}

// WithLine attaches the offending input line to an error for display.
func (e *Error) WithLine(line string) *Error {
	e.Location.Line = line
	return e
}

// KindOf extracts the Kind of err, if it is (or wraps) a *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
