package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeNoContent    ErrorType = "NO_CONTENT"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeInvalidToken ErrorType = "INVALID_TOKEN"
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
)

// ErrorCode is the wire-level status code carried alongside the message.
// Kept as a string for compatibility with the API boundary contract.
type ErrorCode string

const (
	ErrCodeNoContent    ErrorCode = "204"
	ErrCodeBadRequest   ErrorCode = "400"
	ErrCodeUnauthorized ErrorCode = "401"
	ErrCodeNotFound     ErrorCode = "404"
	ErrCodeConflict     ErrorCode = "409"
	ErrCodeInvalidToken ErrorCode = "498"
	ErrCodeInternal     ErrorCode = "500"
)

// StatusInvalidToken is the non-standard HTTP status used for token failures.
const StatusInvalidToken = 498

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

// Is treats two AppErrors with the same type and code as the same error, so
// sentinels still match after WithCause clones them.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && e.Type == t.Type && e.Code == t.Code && e.Message == t.Message
}

func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

func NewNoContentError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeNoContent,
		Code:       ErrCodeNoContent,
		Message:    message,
		StatusCode: http.StatusNoContent,
	}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       ErrCodeNotFound,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Code:       ErrCodeConflict,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       ErrCodeUnauthorized,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewInvalidTokenError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInvalidToken,
		Code:       ErrCodeInvalidToken,
		Message:    message,
		StatusCode: StatusInvalidToken,
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       ErrCodeBadRequest,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       ErrCodeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var (
	ErrNoUsers          = NewNoContentError("No Content")
	ErrUserNotFound     = NewNotFoundError("Not Found: User")
	ErrSiteNotFound     = NewNotFoundError("Not Found: Site")
	ErrUsernameConflict = NewConflictError("Conflict: Username")
	ErrUnauthorized     = NewUnauthorizedError("Unauthorized")
	ErrInvalidToken     = NewInvalidTokenError("Invalid Token")
)

func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

type Response struct {
	Error *AppError `json:"error"`
}

func (e *AppError) ToHTTPResponse() (int, interface{}) {
	return e.StatusCode, Response{Error: e}
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
