// Package errors defines the application error taxonomy. Every core
// operation fails with exactly one of the kinds below; the delivery layer
// maps kinds to HTTP status codes and response envelopes.
package errors

import (
	"net/http"

	"bitefeed/internal/errors"
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

// Predefined error types
var (
	// Identity-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Credential is missing, malformed or expired",
		"",
	)

	ErrPrincipalNotFound = NewBaseError(
		http.StatusUnauthorized,
		"PRINCIPAL_NOT_FOUND",
		"The account referenced by this credential no longer exists",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email or password is incorrect",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	// Interaction-related errors
	ErrItemNotFound = NewBaseError(
		http.StatusNotFound,
		"ITEM_NOT_FOUND",
		"Food item not found",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Subscription-related errors
	ErrSubscriptionNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBSCRIPTION_NOT_FOUND",
		"Subscription request not found",
		"",
	)

	ErrDuplicatePendingRequest = NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_PENDING_REQUEST",
		"An active subscription request already exists",
		"",
	)

	ErrAlreadyApproved = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_APPROVED",
		"Subscription is already approved",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TRANSITION",
		"Requested subscription transition is not permitted",
		"",
	)

	ErrUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPLOAD_FAILED",
		"Failed to upload payment screenshot",
		"",
	)

	// General errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// StoreUnavailableError represents a storage/collaborator failure. It is the
// only transient kind in the taxonomy; callers may retry, the core never does.
type StoreUnavailableError struct {
	err     error
	details string
}

// NewStoreUnavailableError creates a storage-related error
func NewStoreUnavailableError(err error, details string) AppError {
	return &StoreUnavailableError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreUnavailableError) Error() string {
	return errors.Wrap(e.err, "store unavailable").Error()
}

// HTTPCode returns the HTTP status code
func (e *StoreUnavailableError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *StoreUnavailableError) ErrorCode() string {
	return "UNAVAILABLE"
}

// Message returns the user-friendly error message
func (e *StoreUnavailableError) Message() string {
	return "Storage temporarily unavailable"
}

// Details returns detailed error information
func (e *StoreUnavailableError) Details() string {
	return e.details
}

// Unwrap exposes the underlying storage error.
func (e *StoreUnavailableError) Unwrap() error {
	return e.err
}
