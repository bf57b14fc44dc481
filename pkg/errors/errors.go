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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Rule errors
	ErrRuleInvalid ErrorCode = "RULE_INVALID"

	// Host/editor errors
	ErrBatchAborted ErrorCode = "BATCH_ABORTED"
	ErrRangeInvalid ErrorCode = "RANGE_INVALID"
)

// TypofixError represents a structured error with code and details
type TypofixError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TypofixError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TypofixError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TypofixError) Is(target error) bool {
	var targetErr *TypofixError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TypofixError with the given code and message
func New(code ErrorCode, message string) *TypofixError {
	return &TypofixError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TypofixError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TypofixError {
	return &TypofixError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TypofixError
func Wrap(err error, code ErrorCode, message string) *TypofixError {
	if err == nil {
		return nil
	}
	return &TypofixError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TypofixError {
	if err == nil {
		return nil
	}
	return &TypofixError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TypofixError) WithDetail(key string, value interface{}) *TypofixError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *TypofixError) WithDetails(details map[string]interface{}) *TypofixError {
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
	var tErr *TypofixError
	if errors.As(err, &tErr) {
		return tErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TypofixError
func GetErrorCode(err error) ErrorCode {
	var tErr *TypofixError
	if errors.As(err, &tErr) {
		return tErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TypofixError
func GetErrorDetails(err error) map[string]interface{} {
	var tErr *TypofixError
	if errors.As(err, &tErr) {
		return tErr.Details
	}
	return nil
}
