package apperror

import "net/http"

// AppError is a custom error type that includes an HTTP status code and a user-facing message.
type AppError struct {
	Code    int    // HTTP Status Code (e.g., 400, 404)
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Constructors for the failure kinds core operations report.

// Validation reports missing or malformed input (400).
func Validation(message string) *AppError {
	return New(http.StatusBadRequest, message)
}

// NotFound reports an absent room, booking or user (404).
func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message)
}

// Conflict reports a name collision or time-slot overlap (409).
func Conflict(message string) *AppError {
	return New(http.StatusConflict, message)
}

// Forbidden reports an ownership or role violation (403).
func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message)
}

// InvalidState reports an illegal status transition (400).
func InvalidState(message string) *AppError {
	return New(http.StatusBadRequest, message)
}

// Unauthorized reports a missing or bad credential (401).
func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message)
}

// Unavailable reports a storage or dependency failure (503). Callers may retry.
func Unavailable(err error) *AppError {
	return Wrap(err, http.StatusServiceUnavailable, "service temporarily unavailable")
}
