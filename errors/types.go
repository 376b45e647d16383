package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// Source errors
	ErrCodeLoadFailed        ErrorCode = "LOAD_FAILED"
	ErrCodeViewFileInvalid   ErrorCode = "VIEW_FILE_INVALID"
	ErrCodeDuplicateIdentity ErrorCode = "DUPLICATE_IDENTITY"

	// Session errors
	ErrCodeEmptySelection ErrorCode = "EMPTY_SELECTION"
	ErrCodeSessionClosed  ErrorCode = "SESSION_CLOSED"
	ErrCodeCancelled      ErrorCode = "CANCELLED"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// PickError represents a structured error with context
type PickError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *PickError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PickError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *PickError) WithDetail(key string, value interface{}) *PickError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *PickError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new PickError
func New(code ErrorCode, message string) *PickError {
	return &PickError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a PickError
func Wrap(err error, code ErrorCode, message string) *PickError {
	return &PickError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific PickError code
func Is(err error, code ErrorCode) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the outermost error code from an error chain
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	pickErr, ok := err.(*PickError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return pickErr.Code
}
