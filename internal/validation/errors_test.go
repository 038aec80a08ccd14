package validation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		errors   []FieldError
		expected string
	}{
		{"No errors", []FieldError{}, "validation error"},
		{"Single error", []FieldError{{Field: "title", Message: "is required"}}, "validation error for field 'title': is required"},
		{"Multiple errors", []FieldError{
			{Field: "title", Message: "is required"},
			{Field: "priority", Message: "is unknown"},
		}, "multiple validation errors: validation error for field 'title': is required; validation error for field 'priority': is unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			assert.Equal(t, tt.expected, ve.Error())
		})
	}
}

func TestValidationError_HasErrors(t *testing.T) {
	assert.False(t, NewValidationError().HasErrors())

	ve := NewValidationError()
	ve.AddRequiredError("title")
	assert.True(t, ve.HasErrors())
}

func TestValidationError_AddHelpers(t *testing.T) {
	ve := NewValidationError()

	ve.AddRequiredError("id")
	ve.AddInvalidFormatError("due_date", "tomorrow", "YYYY-MM-DD")
	ve.AddInvalidLengthError("title", "xxx", 0, 2)
	ve.AddInvalidValueError("priority", "urgent", "must be one of low, medium, high")

	require.Len(t, ve.Errors, 4)
	assert.Equal(t, ErrorTypeRequired, ve.Errors[0].Type)
	assert.Equal(t, "id is required", ve.Errors[0].Message)
	assert.Equal(t, ErrorTypeInvalidFormat, ve.Errors[1].Type)
	assert.Equal(t, "due_date has invalid format, expected: YYYY-MM-DD", ve.Errors[1].Message)
	assert.Equal(t, "tomorrow", ve.Errors[1].Value)
	assert.Equal(t, ErrorTypeInvalidLength, ve.Errors[2].Type)
	assert.Equal(t, "title must be at most 2 characters long", ve.Errors[2].Message)
	assert.Equal(t, ErrorTypeInvalidValue, ve.Errors[3].Type)
}

func TestValidationError_AddInvalidLengthError(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		expected string
	}{
		{"Range", 1, 10, "name must be between 1 and 10 characters long"},
		{"Min only", 6, 0, "name must be at least 6 characters long"},
		{"Max only", 0, 10, "name must be at most 10 characters long"},
		{"Neither", 0, 0, "name has invalid length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := NewValidationError()
			ve.AddInvalidLengthError("name", "x", tt.min, tt.max)
			assert.Equal(t, tt.expected, ve.Errors[0].Message)
		})
	}
}

func TestValidationError_FirstField(t *testing.T) {
	ve := NewValidationError()
	assert.Equal(t, "", ve.FirstField())

	ve.AddInvalidValueError("priority", "x", "unknown")
	ve.AddRequiredError("title")
	assert.Equal(t, "priority", ve.FirstField())
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	assert.Equal(t, "Input validation failed", NewValidationError().GetUserFriendlyMessage())

	single := newFieldError("email", ErrorTypeRequired, "Please enter email and password.")
	assert.Equal(t, "Please enter email and password.", single.GetUserFriendlyMessage())

	multi := NewValidationError()
	multi.AddRequiredError("id")
	multi.AddRequiredError("title")
	assert.Equal(t, "Multiple validation errors occurred:\n- id is required\n- title is required", multi.GetUserFriendlyMessage())
}

func TestIsValidationError(t *testing.T) {
	ve := NewValidationError()

	assert.True(t, IsValidationError(ve))
	assert.True(t, IsValidationError(fmt.Errorf("wrapped: %w", ve)))
	assert.False(t, IsValidationError(fmt.Errorf("plain")))
	assert.False(t, IsValidationError(nil))
}
