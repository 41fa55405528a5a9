package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures of the rclone wrapper.
type ErrorKind string

const (
	KindToolNotFound          ErrorKind = "tool_not_found"
	KindToolExecutionFailed   ErrorKind = "tool_execution_failed"
	KindInvalidOutputEncoding ErrorKind = "invalid_output_encoding"
	KindMalformedToolOutput   ErrorKind = "malformed_tool_output"
	KindFilesystem            ErrorKind = "filesystem_error"
	KindDownloadFailed        ErrorKind = "download_failed"
	KindArchive               ErrorKind = "archive_error"
)

// Sentinels for errors.Is matching against an *Error of the same kind.
var (
	ErrToolNotFound          = &Error{Kind: KindToolNotFound}
	ErrToolExecutionFailed   = &Error{Kind: KindToolExecutionFailed}
	ErrInvalidOutputEncoding = &Error{Kind: KindInvalidOutputEncoding}
	ErrMalformedToolOutput   = &Error{Kind: KindMalformedToolOutput}
	ErrFilesystem            = &Error{Kind: KindFilesystem}
	ErrDownloadFailed        = &Error{Kind: KindDownloadFailed}
	ErrArchive               = &Error{Kind: KindArchive}
)

// Error is the single error type returned by the wrapper. Its message is
// surfaced to callers verbatim.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// NewError builds an *Error whose message is Message, followed by the cause
// when one is given.
func NewError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Errorf builds an *Error without a wrapped cause.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or "" if there
// is none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
