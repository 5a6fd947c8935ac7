package errors

import (
	"errors"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeMissingField     ErrorType = "missing_field"
	ErrorTypeInvalidURLFormat ErrorType = "invalid_url_format"
	ErrorTypeDownloadFailed   ErrorType = "download_failed"
	ErrorTypeExtractionFailed ErrorType = "extraction_failed"
	ErrorTypeInternal         ErrorType = "internal"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error renders the message followed by the underlying cause, if any.
// This is the text surfaced to API clients.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewMissingFieldError creates an error for an absent required request field
func NewMissingFieldError(field string) *AppError {
	return &AppError{
		Type:       ErrorTypeMissingField,
		Message:    "Missing required field: " + field,
		StatusCode: http.StatusBadRequest,
	}
}

// NewInvalidURLError creates an error for a URL that cannot be used
func NewInvalidURLError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInvalidURLFormat,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// NewDownloadError creates an error for a failed document download
func NewDownloadError(cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeDownloadFailed,
		Message:    "Failed to download PDF",
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewExtractionError creates an error for a document that could not be parsed
func NewExtractionError(cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeExtractionFailed,
		Message:    "Failed to extract text from PDF",
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewInternalError creates a new internal server error
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// IsType checks if the error chain contains an AppError of a specific type
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.StatusCode != 0 {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
