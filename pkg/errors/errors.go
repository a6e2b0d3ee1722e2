package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown         ErrorCode = "UNKNOWN"
	ErrInternal        ErrorCode = "INTERNAL"
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// Link resolution errors
	ErrNotASymlink ErrorCode = "NOT_A_SYMLINK"
	ErrLinkCycle   ErrorCode = "LINK_CYCLE"
	ErrLinkDepth   ErrorCode = "LINK_DEPTH"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// PathkitError represents a structured error with code and details
type PathkitError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PathkitError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PathkitError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PathkitError) Is(target error) bool {
	var targetErr *PathkitError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PathkitError with the given code and message
func New(code ErrorCode, message string) *PathkitError {
	return &PathkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PathkitError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PathkitError {
	return &PathkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PathkitError.
// A nil err yields a nil *PathkitError; callers returning an error
// interface should check err first.
func Wrap(err error, code ErrorCode, message string) *PathkitError {
	if err == nil {
		return nil
	}
	return &PathkitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PathkitError {
	if err == nil {
		return nil
	}
	return &PathkitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PathkitError) WithDetail(key string, value interface{}) *PathkitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *PathkitError) WithDetails(details map[string]interface{}) *PathkitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pkErr *PathkitError
	if errors.As(err, &pkErr) {
		return pkErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PathkitError
func GetErrorCode(err error) ErrorCode {
	var pkErr *PathkitError
	if errors.As(err, &pkErr) {
		return pkErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PathkitError
func GetErrorDetails(err error) map[string]interface{} {
	var pkErr *PathkitError
	if errors.As(err, &pkErr) {
		return pkErr.Details
	}
	return nil
}
