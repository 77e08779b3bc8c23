package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent parsing and dispatch failures.
// Typed errors below match these sentinels through errors.Is.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates a file extension no adapter handles.
	// Recovered by the connection service; never fatal.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrParse indicates a file could not be read or is not well-formed.
	// Never recovered; surfaces to the top level.
	ErrParse = errors.New("parse error")

	// ErrMissingField indicates a record lacks a field the report expects.
	ErrMissingField = errors.New("missing field")

	// ErrFormatMismatch indicates a connector holds a different document
	// variant than the operation requires.
	ErrFormatMismatch = errors.New("format mismatch")
)

// UnsupportedFormatError carries the path the factory refused.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("Cannot connect to %s", e.Path)
}

// Is reports whether target is ErrUnsupportedFormat.
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// ParseError reports a file that could not be read or parsed by an adapter.
type ParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %s: %v", e.Format, e.Path, e.Err)
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Unwrap returns the underlying read or syntax error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
