package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	cause := errors.New("field is required")
	err := NewValidationError("validation failed", cause)

	if err.Type != ErrorTypeValidation {
		t.Errorf("NewValidationError type = %v, want %v", err.Type, ErrorTypeValidation)
	}
	if err.Message != "validation failed" {
		t.Errorf("NewValidationError message = %v, want %v", err.Message, "validation failed")
	}
	if err.Code != CodeValidationFailed {
		t.Errorf("NewValidationError code = %v, want %v", err.Code, CodeValidationFailed)
	}
	if err.Cause != cause {
		t.Errorf("NewValidationError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewAccountExistsError(t *testing.T) {
	err := NewAccountExistsError("foo@bar.com")

	if err.Type != ErrorTypeValidation {
		t.Errorf("NewAccountExistsError type = %v, want %v", err.Type, ErrorTypeValidation)
	}
	if err.Code != CodeAccountExists {
		t.Errorf("NewAccountExistsError code = %v, want %v", err.Code, CodeAccountExists)
	}
	email, ok := err.GetContext("email")
	if !ok || email != "foo@bar.com" {
		t.Errorf("NewAccountExistsError should set email context")
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "abc123")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("NewNotFoundError type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.Message != "task not found: abc123" {
		t.Errorf("NewNotFoundError message = %v, want %v", err.Message, "task not found: abc123")
	}
	if err.Code != CodeNotFound {
		t.Errorf("NewNotFoundError code = %v, want %v", err.Code, CodeNotFound)
	}

	resource, ok := err.GetContext("resource")
	if !ok || resource != "task" {
		t.Errorf("NewNotFoundError should set resource context")
	}
	identifier, ok := err.GetContext("identifier")
	if !ok || identifier != "abc123" {
		t.Errorf("NewNotFoundError should set identifier context")
	}
}

func TestNewDatabaseError(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := NewDatabaseError("set item", cause)

	if err.Type != ErrorTypeDatabase {
		t.Errorf("NewDatabaseError type = %v, want %v", err.Type, ErrorTypeDatabase)
	}
	if err.Message != "database operation failed: set item" {
		t.Errorf("NewDatabaseError message = %v", err.Message)
	}
	if err.Cause != cause {
		t.Errorf("NewDatabaseError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("sort", "alphabetical", "unknown sort key")

	if err.Type != ErrorTypeInvalidInput {
		t.Errorf("NewInvalidInputError type = %v, want %v", err.Type, ErrorTypeInvalidInput)
	}
	if err.Message != "invalid input for sort: unknown sort key" {
		t.Errorf("NewInvalidInputError message = %v", err.Message)
	}

	value, ok := err.GetContext("value")
	if !ok || value != "alphabetical" {
		t.Errorf("NewInvalidInputError should set value context")
	}
}

func TestNewAuthErrors(t *testing.T) {
	authErr := NewAuthError()
	if authErr.Type != ErrorTypeAuth || authErr.Code != CodeAuthFailed {
		t.Errorf("NewAuthError = %+v", authErr)
	}
	if authErr.Message != "Invalid email or password." {
		t.Errorf("NewAuthError message = %v", authErr.Message)
	}

	sessionErr := NewNotAuthenticatedError()
	if sessionErr.Type != ErrorTypeAuth || sessionErr.Code != CodeNotAuthenticated {
		t.Errorf("NewNotAuthenticatedError = %+v", sessionErr)
	}
}

func TestNewStorageError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := NewStorageError("tm_users", cause)

	if err.Type != ErrorTypeStorage {
		t.Errorf("NewStorageError type = %v, want %v", err.Type, ErrorTypeStorage)
	}
	if !errors.Is(err, cause) {
		t.Errorf("NewStorageError should wrap its cause")
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("original error")
	err := WrapError(cause, ErrorTypeDatabase, "wrapped message")

	if err.Type != ErrorTypeDatabase {
		t.Errorf("WrapError type = %v, want %v", err.Type, ErrorTypeDatabase)
	}
	if err.Code != "database" {
		t.Errorf("WrapError code = %v, want %v", err.Code, "database")
	}
	if err.Cause != cause {
		t.Errorf("WrapError cause = %v, want %v", err.Cause, cause)
	}
}

func TestIsAppError(t *testing.T) {
	appError := &AppError{Type: ErrorTypeValidation}
	wrapped := fmt.Errorf("outer: %w", appError)
	regularError := errors.New("regular error")

	if !IsAppError(appError) {
		t.Errorf("IsAppError should return true for AppError")
	}
	if !IsAppError(wrapped) {
		t.Errorf("IsAppError should see through wrapping")
	}
	if IsAppError(regularError) {
		t.Errorf("IsAppError should return false for regular error")
	}
	if IsAppError(nil) {
		t.Errorf("IsAppError should return false for nil")
	}
}

func TestAsAppError(t *testing.T) {
	appError := &AppError{Type: ErrorTypeValidation}

	result, ok := AsAppError(appError)
	if !ok || result != appError {
		t.Errorf("AsAppError should return the same AppError instance")
	}

	result, ok = AsAppError(errors.New("regular error"))
	if ok || result != nil {
		t.Errorf("AsAppError should return nil, false for regular error")
	}
}

func TestIsErrorTypeAndHasErrorCode(t *testing.T) {
	err := fmt.Errorf("register: %w", NewAccountExistsError("a@b.co"))

	if !IsErrorType(err, ErrorTypeValidation) {
		t.Errorf("IsErrorType should return true for matching type")
	}
	if IsErrorType(err, ErrorTypeAuth) {
		t.Errorf("IsErrorType should return false for different type")
	}
	if !HasErrorCode(err, CodeAccountExists) {
		t.Errorf("HasErrorCode should return true for matching code")
	}
	if HasErrorCode(errors.New("plain"), CodeAccountExists) {
		t.Errorf("HasErrorCode should return false for regular error")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Validation error", NewValidationError("Passwords do not match.", nil), "Passwords do not match."},
		{"Account exists", NewAccountExistsError("a@b.co"), "An account with this email already exists."},
		{"Not found error", NewNotFoundError("task", "x"), "task not found: x"},
		{"Auth error", NewAuthError(), "Invalid email or password."},
		{"Not authenticated", NewNotAuthenticatedError(), "not logged in, run `tm login` first"},
		{"Database error", NewDatabaseError("query", errors.New("timeout")), "A database error occurred. Please try again."},
		{"Storage error", NewStorageError("tm_users", nil), "Stored data could not be read."},
		{"Regular error", errors.New("regular error"), "regular error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetUserMessage(tt.err)
			if result != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if GetErrorCode(NewAuthError()) != CodeAuthFailed {
		t.Errorf("GetErrorCode should return correct code for AppError")
	}
	if GetErrorCode(errors.New("regular error")) != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode should return UNKNOWN_ERROR for regular error")
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Validation error", NewValidationError("invalid input", nil), false},
		{"Not found error", NewNotFoundError("task", "1"), false},
		{"Invalid input error", NewInvalidInputError("sort", "x", "unknown"), false},
		{"Auth error", NewAuthError(), false},
		{"Database error", NewDatabaseError("query", errors.New("timeout")), true},
		{"Storage error", NewStorageError("tm_users", nil), true},
		{"Regular error", errors.New("regular error"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ShouldLogError(tt.err)
			if result != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", result, tt.expected)
			}
		})
	}
}
