package errors

import (
	"net/http"

	"shopbot/internal/errors"
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
	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Захиалга олдсонгүй",
		"",
	)

	ErrOrderNotReady = NewBaseError(
		http.StatusConflict,
		"ORDER_NOT_READY",
		"Захиалга бүрэн бөглөгдөөгүй байна",
		"",
	)

	ErrPaymentAccountMissing = NewBaseError(
		http.StatusServiceUnavailable,
		"PAYMENT_ACCOUNT_MISSING",
		"Төлбөрийн данс тохируулагдаагүй байна",
		"",
	)

	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Бүтээгдэхүүн олдсонгүй",
		"",
	)

	// Webhook-related errors
	ErrWebhookVerification = NewBaseError(
		http.StatusForbidden,
		"WEBHOOK_VERIFICATION_FAILED",
		"Webhook баталгаажуулалт амжилтгүй",
		"",
	)

	ErrWebhookSignature = NewBaseError(
		http.StatusUnauthorized,
		"WEBHOOK_SIGNATURE_INVALID",
		"Webhook гарын үсэг буруу байна",
		"",
	)

	ErrUnsupportedObject = NewBaseError(
		http.StatusNotFound,
		"UNSUPPORTED_OBJECT",
		"Дэмжигдээгүй webhook объект",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Нэвтрэх нэр эсвэл нууц үг буруу",
		"",
	)

	ErrAdminDisabled = NewBaseError(
		http.StatusServiceUnavailable,
		"ADMIN_DISABLED",
		"Удирдлагын API идэвхгүй байна",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Оролтын өгөгдөл буруу байна",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Өгөгдлийн сангийн гүйлгээ амжилтгүй",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Системийн дотоод алдаа",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Нөөц олдсонгүй",
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
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Өгөгдлийн сангийн алдаа"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
