// Package errors provides coded errors so callers can tell failure kinds
// apart without matching on message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a category of failure.
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrExists       ErrorCode = "ALREADY_EXISTS"

	// Environment store errors
	ErrStoreRead  ErrorCode = "STORE_READ"
	ErrStoreWrite ErrorCode = "STORE_WRITE"

	// Import / export errors
	ErrImportRead  ErrorCode = "IMPORT_READ"
	ErrImportParse ErrorCode = "IMPORT_PARSE"
	ErrExportWrite ErrorCode = "EXPORT_WRITE"

	// App state errors
	ErrStateLoad ErrorCode = "STATE_LOAD"
	ErrStateSave ErrorCode = "STATE_SAVE"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"
)

// Error is a structured error with a stable code.
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// UserMessage is the text shown in a status line: the message and the
// wrapped cause, without the code prefix.
func (e *Error) UserMessage() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message, Details: make(map[string]interface{})}
}

func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap returns nil if err is nil.
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks whether err, or anything it wraps, carries code.
func IsErrorCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetErrorCode returns the code of err, or ErrUnknown.
func GetErrorCode(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrUnknown
}

// UserMessage returns the status-line text for any error.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.UserMessage()
	}
	return err.Error()
}
