// Package errors provides custom error types for the API.
// All service-layer errors should use AppError to ensure consistent
// responses that never leak store-internal messages to clients.
package errors

import "net/http"

// AppError represents a structured application error with a machine-readable
// error kind, human-readable message, HTTP status code, and optional
// internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrValidation     = &AppError{Code: "validation_error", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "not_found", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrConflict       = &AppError{Code: "conflict", Message: "Resource already exists", StatusCode: http.StatusConflict}
	ErrInternalServer = &AppError{Code: "internal_error", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Category errors.
var (
	ErrCategoryNotFound = &AppError{Code: "not_found", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrDuplicateName    = &AppError{Code: "conflict", Message: "A category with this name already exists", StatusCode: http.StatusConflict}
	ErrCategoryInUse    = &AppError{Code: "conflict", Message: "Category is used by existing items", StatusCode: http.StatusConflict}
)

// Item errors.
var (
	ErrItemNotFound = &AppError{Code: "not_found", Message: "Item not found", StatusCode: http.StatusNotFound}
)
