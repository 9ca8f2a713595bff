package photos

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error.
type Kind int

// Error kinds surfaced by the photo library.
const (
	KindInvalidArgument Kind = iota + 1
	KindNotFound
	KindDuplicate
	KindInvalidQuery
	KindIOFailure
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindNotFound:
		return "not found"
	case KindDuplicate:
		return "duplicate"
	case KindInvalidQuery:
		return "invalid query"
	case KindIOFailure:
		return "io failure"
	default:
		return "unknown"
	}
}

// Error is a domain error with a kind, a message, and an optional cause.
type Error struct {
	Kind  Kind
	Msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error of the same Kind, so errors.Is(err, ErrNotFound) works
// regardless of message.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinels for use with errors.Is.
var (
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument, Msg: "invalid argument"}
	ErrNotFound        = &Error{Kind: KindNotFound, Msg: "not found"}
	ErrDuplicate       = &Error{Kind: KindDuplicate, Msg: "duplicate"}
	ErrInvalidQuery    = &Error{Kind: KindInvalidQuery, Msg: "invalid query"}
	ErrIOFailure       = &Error{Kind: KindIOFailure, Msg: "io failure"}
)

// Errorf creates an error of the given kind with a formatted message.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrapf wraps err with a kind and a formatted message.
func Wrapf(err error, kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), cause: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
