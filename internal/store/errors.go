package store

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrFileAccess is returned when an account file cannot be opened, created or replaced.
	ErrFileAccess = errors.New("file access error")

	// ErrParse is returned when an account file is malformed.
	ErrParse = errors.New("parse error")

	// ErrSerialization is returned when an account cannot be encoded for output.
	ErrSerialization = errors.New("serialization error")
)

// ParseError describes where an account file failed to parse.
// It matches ErrParse with errors.Is.
type ParseError struct {
	// Line is the 1-based file line, or 0 when unknown.
	Line int

	// Record is the 1-based data record (the header is not counted), or 0 when unknown.
	Record int

	// Column is the offending column name, if any.
	Column string

	Err error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(ErrParse.Error())
	if e.Line > 0 {
		fmt.Fprintf(&b, ": line %d", e.Line)
	}
	if e.Record > 0 {
		fmt.Fprintf(&b, ": record %d", e.Record)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, ": column %q", e.Column)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
