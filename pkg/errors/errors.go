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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Source parsing errors
	ErrParse ErrorCode = "PARSE"

	// Inline attribute errors
	ErrDecoderUnavailable ErrorCode = "DECODER_UNAVAILABLE"
	ErrAttributeDecode    ErrorCode = "ATTRIBUTE_DECODE"

	// FileSystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
)

// MarkhtmlError represents a structured error with code and details
type MarkhtmlError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MarkhtmlError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MarkhtmlError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a MarkhtmlError with the same code
func (e *MarkhtmlError) Is(target error) bool {
	var targetErr *MarkhtmlError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MarkhtmlError with the given code and message
func New(code ErrorCode, message string) *MarkhtmlError {
	return &MarkhtmlError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MarkhtmlError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MarkhtmlError {
	return &MarkhtmlError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MarkhtmlError.
// A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *MarkhtmlError {
	if err == nil {
		return nil
	}
	return &MarkhtmlError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MarkhtmlError {
	if err == nil {
		return nil
	}
	return &MarkhtmlError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MarkhtmlError) WithDetail(key string, value interface{}) *MarkhtmlError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var mErr *MarkhtmlError
	if errors.As(err, &mErr) {
		return mErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MarkhtmlError
func GetErrorCode(err error) ErrorCode {
	var mErr *MarkhtmlError
	if errors.As(err, &mErr) {
		return mErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MarkhtmlError
func GetErrorDetails(err error) map[string]interface{} {
	var mErr *MarkhtmlError
	if errors.As(err, &mErr) {
		return mErr.Details
	}
	return nil
}
