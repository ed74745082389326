package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies an AppError for the HTTP layer
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken       ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeTooManyAttempts    ErrorCode = "TOO_MANY_ATTEMPTS"

	// Database errors
	ErrCodeDBError    ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound ErrorCode = "DB_NOT_FOUND"
	ErrCodeConflict   ErrorCode = "CONFLICT"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidEmail  ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidID     ErrorCode = "INVALID_ID"

	// Business errors
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"
	ErrCodeUnavailable      ErrorCode = "SERVICE_UNAVAILABLE"
)

// AppError is the error type returned by services
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NotFound is shorthand for a DB_NOT_FOUND AppError
func NotFound(message string) *AppError {
	return NewAppError(ErrCodeDBNotFound, message, nil)
}

// Validation is shorthand for a VALIDATION_ERROR AppError
func Validation(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, nil)
}

// Internal wraps a downstream failure
func Internal(message string, err error) *AppError {
	return NewAppError(ErrCodeDBError, message, err)
}

// IsAppError reports whether err is (or wraps) an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode reports whether err carries the given code
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	ErrTourNotFound         = errors.New("tour not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrInvalidTransition    = errors.New("invalid booking status transition")
)
