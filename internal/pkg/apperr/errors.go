package apperr

import (
	"fmt"
)

const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeInvalidConfig = "INVALID_CONFIG"
	CodeNotFound      = "NOT_FOUND"
	CodeAlreadyExists = "ALREADY_EXISTS"
	CodeInternalError = "INTERNAL_ERROR"
)

const (
	ExitInternal = 1
	ExitUsage    = 2
	ExitInput    = 3
	ExitConflict = 4
)

var (
	// ErrInvalidInput is returned when an input file cannot be interpreted as an equipment export.
	ErrInvalidInput = New(ExitInput, CodeInvalidInput, "invalid input: file is not a recognized equipment export")

	// ErrInvalidConfig is returned when the effective configuration is incomplete or inconsistent.
	ErrInvalidConfig = New(ExitUsage, CodeInvalidConfig, "invalid configuration: some or all options are invalid")

	// ErrNotFound is returned when an input file or output folder does not exist.
	ErrNotFound = New(ExitInput, CodeNotFound, "file or folder not found")

	// ErrAlreadyExists is returned when a destination object would be overwritten.
	ErrAlreadyExists = New(ExitConflict, CodeAlreadyExists, "destination already exists")

	// ErrInternalError is returned when an unexpected I/O failure occurs.
	ErrInternalError = New(ExitInternal, CodeInternalError, "internal error occurred")
)

type Extras map[string]interface{}

type Error struct {
	ExitCode  int
	ErrorCode string
	Message   string
	Extras    *Extras
}

func New(exitCode int, errorCode string, message string) *Error {
	return &Error{
		ExitCode:  exitCode,
		ErrorCode: errorCode,
		Message:   message,
	}
}

func (e Error) Msg(format string, parts ...interface{}) *Error {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e Error) WithExtras(extras Extras) *Error {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *Error {
	// copy ErrInvalidConfig as e
	e := *ErrInvalidConfig
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

// Is reports whether target carries the same error code, so that errors
// derived with Msg or WithExtras still match their sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.ErrorCode == e.ErrorCode
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
