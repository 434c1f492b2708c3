package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes
const (
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeInternal           = "INTERNAL_ERROR"
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeInvalidRange       = "INVALID_RANGE"
	ErrCodeInvalidCustomRange = "INVALID_CUSTOM_RANGE"
)

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	Code    string // Error code (e.g., "NOT_FOUND", "INVALID_RANGE")
	Message string // Human-readable error message
	Status  int    // HTTP status code
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  404,
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  400,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  500,
		Err:     err,
	}
}

// NewBadRequestError creates a new BAD_REQUEST error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  400,
	}
}

// NewInvalidRangeError reports a custom-difficulty start for a variant that has
// no custom range configured yet. Callers prompt for a range and retry.
func NewInvalidRangeError(variant string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidRange,
		Message: fmt.Sprintf("no custom range configured for %s", variant),
		Status:  409,
	}
}

// NewInvalidCustomRangeError reports user supplied bounds that were rejected.
func NewInvalidCustomRangeError(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidCustomRange,
		Message: reason,
		Status:  400,
	}
}

// HasCode reports whether err is (or wraps) an AppError carrying code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

func IsInvalidRange(err error) bool       { return HasCode(err, ErrCodeInvalidRange) }
func IsInvalidCustomRange(err error) bool { return HasCode(err, ErrCodeInvalidCustomRange) }
