package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies a failure for status mapping and logging.
type ErrorType string

const (
	// ErrorTypeValidation covers missing or malformed caller input.
	ErrorTypeValidation ErrorType = "VALIDATION"
	// ErrorTypeUpstream covers a failed collaborator call.
	ErrorTypeUpstream ErrorType = "UPSTREAM"
	// ErrorTypeInternal covers everything else.
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError carries a classified failure across layers.
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Validation creates a caller-input error.
func Validation(message string) *AppError {
	return &AppError{Type: ErrorTypeValidation, Message: message}
}

// Upstream wraps a collaborator failure.
func Upstream(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeUpstream, Message: message, Cause: cause}
}

// Internal wraps an unexpected failure.
func Internal(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeInternal, Message: message, Cause: cause}
}

// GetAppError extracts an AppError from an error chain, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HTTPStatus maps an error to the status code it should surface as.
// Unclassified errors map to 500.
func HTTPStatus(err error) int {
	if appErr := GetAppError(err); appErr != nil {
		switch appErr.Type {
		case ErrorTypeValidation:
			return http.StatusBadRequest
		case ErrorTypeUpstream, ErrorTypeInternal:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}

// UserMessage returns the message safe to put in a response envelope.
func UserMessage(err error) string {
	if appErr := GetAppError(err); appErr != nil {
		if appErr.Type == ErrorTypeUpstream && appErr.Cause != nil {
			return fmt.Sprintf("%s: %v", appErr.Message, appErr.Cause)
		}
		return appErr.Message
	}
	return err.Error()
}
