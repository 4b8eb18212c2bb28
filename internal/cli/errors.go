package cli

import (
	"pathswitch/internal/errors"
)

// Exit codes
const (
	ExitSuccess           = 0 // Success
	ExitGeneralError      = 1 // General error
	ExitInvalidParameters = 3 // Unknown group or entry, bad arguments
	ExitStoreWriteFailed  = 4 // The PATH value could not be written
)

// exitCodeError carries the process exit code for an error.
type exitCodeError struct {
	code int
	err  error
}

func (e exitCodeError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e exitCodeError) Unwrap() error {
	return e.err
}

func (e exitCodeError) ExitCode() int {
	return e.code
}

func exitWithCode(code int, err error) error {
	return exitCodeError{code: code, err: err}
}

// exitCodeFor maps a coded error to the exit code reported to the shell.
func exitCodeFor(err error) int {
	switch errors.GetErrorCode(err) {
	case errors.ErrInvalidInput, errors.ErrNotFound, errors.ErrExists:
		return ExitInvalidParameters
	case errors.ErrStoreWrite:
		return ExitStoreWriteFailed
	}
	return ExitGeneralError
}

func invalidArgs(err error) error {
	if err == nil {
		return nil
	}
	return errors.New(errors.ErrInvalidInput, err.Error())
}
