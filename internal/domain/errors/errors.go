package errors

import (
	"net/http"

	"portal/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors by business code so WithDetails copies still match the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Session-related errors
	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Sign in to continue",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Your session has expired, please sign in again",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Please correct the highlighted fields",
		"",
	)

	// Address-related errors
	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"Address not found",
		"",
	)

	ErrManagerRequired = NewBaseError(
		http.StatusBadRequest,
		"MANAGER_REQUIRED",
		"Select a manager to assign",
		"",
	)

	ErrManagerNotEligible = NewBaseError(
		http.StatusBadRequest,
		"MANAGER_NOT_ELIGIBLE",
		"Only admins can manage an address",
		"",
	)

	ErrCoordinatesMissing = NewBaseError(
		http.StatusUnprocessableEntity,
		"COORDINATES_MISSING",
		"The address has no coordinates",
		"",
	)

	// Geocoding-related errors
	ErrCandidateNotFound = NewBaseError(
		http.StatusNotFound,
		"CANDIDATE_NOT_FOUND",
		"No such address suggestion",
		"",
	)

	// Upstream-related errors
	ErrUnrecognizedEnvelope = NewBaseError(
		http.StatusBadGateway,
		"UNRECOGNIZED_ENVELOPE",
		"The server returned an unexpected response",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// UpstreamError represents a failed call to the building management backend, implementing the AppError interface
type UpstreamError struct {
	err        error
	statusCode int
	message    string
}

// NewUpstreamError creates an upstream error. statusCode is 0 for transport failures.
func NewUpstreamError(err error, statusCode int, message string) *UpstreamError {
	return &UpstreamError{
		err:        err,
		statusCode: statusCode,
		message:    message,
	}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.err == nil {
		return "upstream request failed: " + e.message
	}

	return errors.Wrap(e.err, "upstream request failed").Error()
}

// Unwrap returns the underlying transport error
func (e *UpstreamError) Unwrap() error {
	return e.err
}

// StatusCode returns the upstream HTTP status, 0 for transport failures
func (e *UpstreamError) StatusCode() int {
	return e.statusCode
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	switch e.statusCode {
	case http.StatusBadRequest, http.StatusForbidden, http.StatusNotFound, http.StatusConflict, http.StatusUnprocessableEntity:
		return e.statusCode
	default:
		return http.StatusBadGateway
	}
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	if e.statusCode == 0 {
		return "UPSTREAM_UNREACHABLE"
	}

	return "UPSTREAM_ERROR"
}

// Message returns the server-provided error text when there is one
func (e *UpstreamError) Message() string {
	if e.message != "" {
		return e.message
	}
	if e.statusCode == 0 {
		return "The server could not be reached"
	}

	return http.StatusText(e.statusCode)
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	if e.err == nil {
		return ""
	}

	return e.err.Error()
}
