package cli

import (
	"errors"
	"testing"

	apperrors "task-manager/internal/errors"
	"task-manager/internal/validation"

	"github.com/stretchr/testify/assert"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name      string
		operation string
		err       error
		expected  string
	}{
		{
			name:      "Validation error",
			operation: "add task",
			err:       apperrors.NewValidationError("Task title cannot be empty.", nil),
			expected:  "failed to add task: Task title cannot be empty.",
		},
		{
			name:      "Account exists",
			operation: "register",
			err:       apperrors.NewAccountExistsError("foo@bar.com"),
			expected:  "failed to register: An account with this email already exists.",
		},
		{
			name:      "Auth error",
			operation: "log in",
			err:       apperrors.NewAuthError(),
			expected:  "failed to log in: Invalid email or password.",
		},
		{
			name:      "Not logged in",
			operation: "list tasks",
			err:       apperrors.NewNotAuthenticatedError(),
			expected:  "failed to list tasks: not logged in, run `tm login` first",
		},
		{
			name:      "Not found error",
			operation: "edit task",
			err:       apperrors.NewNotFoundError("task", "123"),
			expected:  "failed to edit task: task not found: 123",
		},
		{
			name:      "Database error",
			operation: "save task",
			err:       apperrors.NewDatabaseError("insert", errors.New("timeout")),
			expected:  "failed to save task: A database error occurred. Please try again.",
		},
		{
			name:      "Bare validation error",
			operation: "add task",
			err: &validation.ValidationError{
				Errors: []validation.FieldError{{Field: "title", Message: "too long"}},
			},
			expected: "failed to add task: too long",
		},
		{
			name:      "Regular error",
			operation: "process",
			err:       errors.New("regular error"),
			expected:  "failed to process: regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, eh.Handle(tt.operation, tt.err), tt.expected)
		})
	}

	assert.NoError(t, eh.Handle("anything", nil))
}

func TestErrorHandler_HandleSimple(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Validation error",
			err:      apperrors.NewValidationError("invalid input", nil),
			expected: "invalid input",
		},
		{
			name:     "Not found error",
			err:      apperrors.NewNotFoundError("task", "123"),
			expected: "task not found: 123",
		},
		{
			name:     "Storage error",
			err:      apperrors.NewStorageError("tm_users", errors.New("bad json")),
			expected: "Stored data could not be read.",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, eh.HandleSimple(tt.err), tt.expected)
		})
	}
}

func TestErrorHandler_Classification(t *testing.T) {
	eh := NewErrorHandler()

	legacy := &validation.ValidationError{
		Errors: []validation.FieldError{{Field: "test", Message: "invalid"}},
	}

	assert.True(t, eh.IsValidationError(apperrors.NewValidationError("invalid input", nil)))
	assert.True(t, eh.IsValidationError(legacy))
	assert.False(t, eh.IsValidationError(apperrors.NewDatabaseError("insert", nil)))
	assert.False(t, eh.IsValidationError(errors.New("regular error")))

	assert.True(t, eh.IsNotFoundError(apperrors.NewNotFoundError("task", "1")))
	assert.False(t, eh.IsNotFoundError(apperrors.NewAuthError()))

	assert.True(t, eh.IsAuthError(apperrors.NewAuthError()))
	assert.True(t, eh.IsAuthError(apperrors.NewNotAuthenticatedError()))
	assert.False(t, eh.IsAuthError(errors.New("regular error")))

	assert.Equal(t, apperrors.CodeAccountExists, eh.GetErrorCode(apperrors.NewAccountExistsError("a@b.co")))
	assert.Equal(t, "UNKNOWN_ERROR", eh.GetErrorCode(errors.New("regular error")))
}
