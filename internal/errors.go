package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
	ErrorTypeExternal     ErrorType = "EXTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidAmount    ErrorCode = "INVALID_AMOUNT"
	ErrCodeInvalidRole      ErrorCode = "INVALID_ROLE"
	ErrCodeInvalidManager   ErrorCode = "INVALID_MANAGER"

	ErrCodeUserNotFound      ErrorCode = "USER_NOT_FOUND"
	ErrCodeRequestNotFound   ErrorCode = "REQUEST_NOT_FOUND"
	ErrCodeDuplicateUser     ErrorCode = "DUPLICATE_USER"
	ErrCodeProtectedUser     ErrorCode = "PROTECTED_USER"
	ErrCodeIllegalTransition ErrorCode = "ILLEGAL_TRANSITION"
	ErrCodeNotDeletable      ErrorCode = "REQUEST_NOT_DELETABLE"

	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeReceiptUpload      ErrorCode = "RECEIPT_UPLOAD_FAILED"
)

// AppError is the single error shape surfaced by services. StatusCode follows
// the wire contract: not-found 404, validation and conflict 400, unauthorized
// 401, internal/external 500.
type AppError struct {
	Type       ErrorType `json:"type"`
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

func (e *AppError) WithMessage(message string) *AppError {
	clone := *e
	clone.Message = message
	return &clone
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

// NewConflictError reports a business-rule conflict. The wire status is 400;
// the API surface has no 409.
func NewConflictError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewExternalError wraps an upstream failure (receipt storage) into a server
// error that carries the underlying message.
func NewExternalError(message string, code ErrorCode, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeExternal,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var (
	ErrUserNotFound    = NewNotFoundError("User not found", ErrCodeUserNotFound)
	ErrRequestNotFound = NewNotFoundError("Request not found", ErrCodeRequestNotFound)

	ErrDuplicateUser  = NewConflictError("Employee ID already exists", ErrCodeDuplicateUser)
	ErrProtectedUser  = NewConflictError("Cannot delete Master Admin", ErrCodeProtectedUser)
	ErrNotDeletable   = NewConflictError("Only pending requests can be deleted", ErrCodeNotDeletable)
	ErrInvalidManager = NewValidationError("Manager ID not found", ErrCodeInvalidManager)

	ErrInvalidCredentials = NewUnauthorizedError("Invalid name or password", ErrCodeInvalidCredentials)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType `json:"type"`
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
	})
}
