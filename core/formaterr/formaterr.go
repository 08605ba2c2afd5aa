// Package formaterr holds the single error type raised for structural
// violations of the FASTA and ms text grammars.
package formaterr

import (
	"errors"
	"fmt"
)

// ErrFormat matches every *Error via errors.Is.
var ErrFormat = errors.New("format error")

// Error reports where and why a stream failed to parse.
// Line is 1-based; 0 means the position is unknown.
type Error struct {
	Format string // "fasta", "ms"
	Line   int
	Msg    string
	Err    error // optional cause, e.g. a strconv error
}

func (e *Error) Error() string {
	s := e.Format
	if e.Line > 0 {
		s += fmt.Sprintf(": line %d", e.Line)
	}
	s += ": " + e.Msg
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == ErrFormat }

// New builds an *Error with a formatted message.
func New(format string, line int, msg string, a ...any) *Error {
	return &Error{Format: format, Line: line, Msg: fmt.Sprintf(msg, a...)}
}

// Wrap is New with a cause attached.
func Wrap(err error, format string, line int, msg string, a ...any) *Error {
	e := New(format, line, msg, a...)
	e.Err = err
	return e
}
