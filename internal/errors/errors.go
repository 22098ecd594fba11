// Package errors provides the application error types for the Paisa API.
// Service-layer errors use AppError so handlers can produce consistent JSON
// responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
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
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Entity errors.
var (
	ErrExpenseNotFound       = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
	ErrPaymentMethodNotFound = &AppError{Code: "PAYMENT_METHOD_NOT_FOUND", Message: "Payment method not found", StatusCode: http.StatusNotFound}
	ErrReminderNotFound      = &AppError{Code: "REMINDER_NOT_FOUND", Message: "Reminder not found", StatusCode: http.StatusNotFound}
)

// Import errors.
var (
	ErrMalformedImport = &AppError{Code: "MALFORMED_IMPORT", Message: "Import file is not valid Paisa data", StatusCode: http.StatusBadRequest}
)

// Sync errors.
var (
	ErrSyncInProgress = &AppError{Code: "SYNC_IN_PROGRESS", Message: "A connection attempt is already in progress", StatusCode: http.StatusConflict}
	ErrNotConnected   = &AppError{Code: "NOT_CONNECTED", Message: "Not connected to remote storage", StatusCode: http.StatusConflict}
	ErrAuthDenied     = &AppError{Code: "AUTH_DENIED", Message: "Access was denied. Grant the requested permissions and try again", StatusCode: http.StatusForbidden}
	ErrAuthFailed     = &AppError{Code: "AUTH_FAILED", Message: "Could not authorize with remote storage. Check your connection and try again", StatusCode: http.StatusBadGateway}
	ErrProvisioning   = &AppError{Code: "PROVISIONING_FAILED", Message: "Could not prepare remote folder and files", StatusCode: http.StatusBadGateway}
)
