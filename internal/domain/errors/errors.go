package errors

import (
	"net/http"

	"spoolmeter/internal/errors"
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
	// Ingestion errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Spool meter credentials are invalid.",
		"",
	)

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"The request payload is invalid.",
		"",
	)

	ErrMissingSpoolMeterID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Must supply a spool meter id!",
		"",
	)

	ErrMissingPassword = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Must supply a password!",
		"",
	)

	ErrMissingAmount = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Must supply the new amount!",
		"",
	)

	ErrMissingBatteryLevel = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Must supply the new battery level!",
		"",
	)

	ErrAmountNotNumber = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"The new amount has to be a valid number.",
		"",
	)

	ErrAmountNegative = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"The new amount cannot be negative.",
		"",
	)

	ErrBatteryStatusInvalid = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"The new battery status is invalid!",
		"",
	)

	// Lookup errors
	ErrSpoolMeterNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Spool meter not found.",
		"",
	)

	ErrPushDestinationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Push destination not found.",
		"",
	)

	ErrPushDestinationAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"DESTINATION_ALREADY_REGISTERED",
		"This push destination is already registered.",
		"",
	)

	// Account errors
	ErrAccountUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Invalid or expired access token.",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not own this spool meter.",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed.",
		"",
	)

	// Storage errors
	ErrStorageFailure = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_FAILURE",
		"The backing store is unavailable.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error.",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "STORAGE_FAILURE"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "The backing store is unavailable."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// IsStorageFailure reports whether err originates from the backing store.
func IsStorageFailure(err error) bool {
	if errors.Is(err, ErrStorageFailure) {
		return true
	}

	var dbErr *DatabaseExecuteError

	return errors.As(err, &dbErr)
}
