package search

import (
	"errors"
	"io/fs"
)

// ErrorKind classifies a search failure.
type ErrorKind int

const (
	// KindInvalidArguments is returned when the argument list is too short.
	KindInvalidArguments ErrorKind = iota + 1
	// KindIO is returned when the target file cannot be read or results cannot be written.
	KindIO
)

// String returns the string representation of ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArguments:
		return "invalid arguments"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// notEnoughArguments is the fixed message for KindInvalidArguments.
const notEnoughArguments = "Not enough arguments"

// ErrInvalidUTF8 is the cause carried by a KindIO error when the file is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Error is the single error type returned by this package.
type Error struct {
	Kind ErrorKind // What went wrong
	Path string    // File involved (KindIO only)
	Err  error     // Underlying cause (KindIO only)
}

func invalidArguments() *Error {
	return &Error{Kind: KindInvalidArguments}
}

func ioError(path string, err error) *Error {
	return &Error{Kind: KindIO, Path: path, Err: err}
}

// Error implements the error interface.
// Path errors from the os package already name the file, so they are used verbatim.
func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidArguments:
		return notEnoughArguments
	case KindIO:
		if e.Err == nil {
			return e.Path + ": i/o error"
		}
		var pathErr *fs.PathError
		if errors.As(e.Err, &pathErr) || e.Path == "" {
			return e.Err.Error()
		}
		return e.Path + ": " + e.Err.Error()
	default:
		return "search failed"
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsInvalidArguments reports whether err is a KindInvalidArguments search error.
func IsInvalidArguments(err error) bool {
	return kindOf(err) == KindInvalidArguments
}

// IsIO reports whether err is a KindIO search error.
func IsIO(err error) bool {
	return kindOf(err) == KindIO
}

func kindOf(err error) ErrorKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}
