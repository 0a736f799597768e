package errors

import (
	"net/http"

	"ecodeli/internal/errors"
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

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business code, so errors built
// with WithDetails still compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information
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
	// Input errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid matching input",
		"",
	)

	// Deliverer errors
	ErrDelivererNotFound = NewBaseError(
		http.StatusNotFound,
		"DELIVERER_NOT_FOUND",
		"Deliverer profile not found",
		"",
	)

	ErrDelivererNotApproved = NewBaseError(
		http.StatusForbidden,
		"DELIVERER_NOT_APPROVED",
		"Deliverer documents are not validated yet",
		"",
	)

	ErrDelivererLocationUnknown = NewBaseError(
		http.StatusUnprocessableEntity,
		"DELIVERER_LOCATION_UNKNOWN",
		"Deliverer position is unknown, share a location first",
		"",
	)

	// Announcement errors
	ErrAnnouncementNotFound = NewBaseError(
		http.StatusNotFound,
		"ANNOUNCEMENT_NOT_FOUND",
		"Announcement not found",
		"",
	)

	ErrAnnouncementNotOpen = NewBaseError(
		http.StatusConflict,
		"ANNOUNCEMENT_NOT_OPEN",
		"Announcement is not open for applications",
		"",
	)

	ErrAnnouncementAlreadyMatched = NewBaseError(
		http.StatusConflict,
		"ANNOUNCEMENT_ALREADY_MATCHED",
		"Announcement already has an accepted deliverer",
		"",
	)

	ErrAnnouncementOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"ANNOUNCEMENT_OWNERSHIP_VIOLATION",
		"You do not own this announcement",
		"",
	)

	// Application errors
	ErrApplicationNotFound = NewBaseError(
		http.StatusNotFound,
		"APPLICATION_NOT_FOUND",
		"Application not found",
		"",
	)

	ErrDuplicateApplication = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_APPLICATION",
		"You already applied to this announcement",
		"",
	)

	ErrApplicationNotPending = NewBaseError(
		http.StatusConflict,
		"APPLICATION_NOT_PENDING",
		"Application was already decided",
		"",
	)

	// Route errors
	ErrRouteNotFound = NewBaseError(
		http.StatusNotFound,
		"ROUTE_NOT_FOUND",
		"No route planned for this date",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
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

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
