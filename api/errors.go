// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the atomicwait library.
//
// Note the narrow role of errors here: passing a forbidden memory order to a
// load- or store-class operation is a contract violation caught by debug
// assertions (panic), never a returned error. The values below cover the
// recoverable edges of the control plane and the timed wait surface.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrTableClosed  = fmt.Errorf("wait table is closed")
	ErrInvalidOrder = fmt.Errorf("memory order not valid for this operation")
	ErrNotSupported = fmt.Errorf("operation not supported on this platform")
)

// ErrorCode classifies structured errors raised by the control plane.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeBadConfig
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
