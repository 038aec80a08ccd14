package errors

import (
	"errors"
	"fmt"
)

// Error codes shared by the account and task services.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeNotFound         = "NOT_FOUND"
	CodeDatabaseError    = "DATABASE_ERROR"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeAuthFailed       = "AUTH_FAILED"
	CodeNotAuthenticated = "NOT_AUTHENTICATED"
	CodeAccountExists    = "ACCOUNT_EXISTS"
	CodeStorageCorrupt   = "STORAGE_CORRUPT"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    CodeValidationFailed,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewAccountExistsError reports a registration for an email that is already taken.
func NewAccountExistsError(email string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: "An account with this email already exists.",
		Code:    CodeAccountExists,
		Context: map[string]interface{}{
			"email": email,
		},
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    CodeNotFound,
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewDatabaseError creates a new database error
func NewDatabaseError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeDatabase,
		Message: fmt.Sprintf("database operation failed: %s", operation),
		Code:    CodeDatabaseError,
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    CodeInvalidInput,
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewAuthError is returned for unknown emails and wrong passwords alike.
func NewAuthError() *AppError {
	return &AppError{
		Type:    ErrorTypeAuth,
		Message: "Invalid email or password.",
		Code:    CodeAuthFailed,
		Context: make(map[string]interface{}),
	}
}

// NewNotAuthenticatedError creates an error for a missing or stale session
func NewNotAuthenticatedError() *AppError {
	return &AppError{
		Type:    ErrorTypeAuth,
		Message: "not logged in",
		Code:    CodeNotAuthenticated,
		Context: make(map[string]interface{}),
	}
}

// NewStorageError creates an error for an unreadable persisted value
func NewStorageError(key string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: fmt.Sprintf("stored value is unreadable: %s", key),
		Code:    CodeStorageCorrupt,
		Cause:   cause,
		Context: map[string]interface{}{
			"key": key,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// HasErrorCode checks if the error is an AppError with the given code
func HasErrorCode(err error, code string) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.HasCode(code)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput:
			return appErr.Message
		case ErrorTypeAuth:
			if appErr.Code == CodeNotAuthenticated {
				return "not logged in, run `tm login` first"
			}
			return appErr.Message
		case ErrorTypeDatabase:
			return "A database error occurred. Please try again."
		case ErrorTypeStorage:
			return "Stored data could not be read."
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput, ErrorTypeAuth:
			return false // user errors
		default:
			return true
		}
	}
	return true
}
