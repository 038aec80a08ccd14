package validation

import (
	"strings"

	"task-manager/internal/domain"
)

// MsgEmptyTitle is shown when a task is added or saved without a title
const MsgEmptyTitle = "Task title cannot be empty."

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator(validator *Validator) *TaskValidator {
	if validator == nil {
		validator = NewValidator()
	}
	return &TaskValidator{
		validator: validator,
	}
}

// ValidateTaskFields validates the editable fields of a task. An empty title
// is reported on its own; other problems are collected together.
func (tv *TaskValidator) ValidateTaskFields(title, dueDate, priority string) error {
	trimmedTitle := tv.validator.TrimAndValidateString(title)
	if !tv.validator.IsNonEmptyString(trimmedTitle) {
		return newFieldError("title", ErrorTypeRequired, MsgEmptyTitle)
	}

	validationError := NewValidationError()

	if !tv.validator.IsValidTitleLength(trimmedTitle) {
		validationError.AddInvalidLengthError("title", trimmedTitle, 0, tv.validator.TitleMaxLength())
	}

	if !tv.validator.IsValidDueDate(dueDate) {
		validationError.AddInvalidFormatError("due_date", dueDate, "YYYY-MM-DD")
	}

	if !tv.validator.IsValidPriority(priority) {
		validationError.AddInvalidValueError("priority", priority, "must be one of low, medium, high")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id string) error {
	if !tv.validator.IsNonEmptyString(id) {
		validationError := NewValidationError()
		validationError.AddRequiredError("id")
		return validationError
	}
	return nil
}

// NormalizePriority lowercases a priority and applies the default when empty.
// Call ValidateTaskFields first; unknown values are returned unchanged.
func (tv *TaskValidator) NormalizePriority(priority string) domain.Priority {
	p := strings.ToLower(strings.TrimSpace(priority))
	if p == "" {
		return domain.DefaultPriority
	}
	return domain.Priority(p)
}
