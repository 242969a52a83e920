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
	ErrConfigLoad     ErrorCode = "CONFIG_LOAD"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrConfigValid    ErrorCode = "CONFIG_INVALID"
	ErrUnknownRelay   ErrorCode = "UNKNOWN_RELAY_TYPE"
	ErrUnknownFamily  ErrorCode = "UNKNOWN_FAMILY"
	ErrUnknownRegion  ErrorCode = "UNKNOWN_REGION"
	ErrUnknownFormat  ErrorCode = "UNKNOWN_FORMAT"
	ErrUnknownSource  ErrorCode = "UNKNOWN_SOURCE"
	ErrUnknownEncode  ErrorCode = "UNKNOWN_ENCODING"
	ErrInvalidPattern ErrorCode = "INVALID_PATTERN"

	// Workbook errors
	ErrWorkbookOpen  ErrorCode = "WORKBOOK_OPEN"
	ErrWorkbookTable ErrorCode = "WORKBOOK_TABLE"
	ErrSchema        ErrorCode = "SCHEMA"

	// Template errors
	ErrTemplateCopy  ErrorCode = "TEMPLATE_COPY"
	ErrTemplateRead  ErrorCode = "TEMPLATE_READ"
	ErrTemplateWrite ErrorCode = "TEMPLATE_WRITE"
	ErrEncoding      ErrorCode = "ENCODING"
)

// RelayError represents a structured error with code and details
type RelayError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RelayError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RelayError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RelayError) Is(target error) bool {
	var targetErr *RelayError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RelayError with the given code and message
func New(code ErrorCode, message string) *RelayError {
	return &RelayError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RelayError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RelayError {
	return &RelayError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RelayError
func Wrap(err error, code ErrorCode, message string) *RelayError {
	if err == nil {
		return nil
	}
	return &RelayError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RelayError {
	if err == nil {
		return nil
	}
	return &RelayError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RelayError) WithDetail(key string, value interface{}) *RelayError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var relayErr *RelayError
	if errors.As(err, &relayErr) {
		return relayErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RelayError
func GetErrorCode(err error) ErrorCode {
	var relayErr *RelayError
	if errors.As(err, &relayErr) {
		return relayErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a RelayError
func GetErrorDetails(err error) map[string]interface{} {
	var relayErr *RelayError
	if errors.As(err, &relayErr) {
		return relayErr.Details
	}
	return nil
}
