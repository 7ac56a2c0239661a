// Package apperr defines the error kinds the service distinguishes at its
// boundaries. Callers match on the code with errors.As instead of parsing
// message text.
package apperr

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeConfiguration Code = "configuration_error"
	CodeValidation    Code = "validation_error"
	CodeOracle        Code = "oracle_error"
)

type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Configuration(msg string) *Error {
	return &Error{Code: CodeConfiguration, Message: msg}
}

func Validationf(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func Oracle(msg string, err error) *Error {
	return &Error{Code: CodeOracle, Message: msg, Err: err}
}

// CodeOf returns the code carried by err, or "" for errors outside the
// taxonomy.
func CodeOf(err error) Code {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}
