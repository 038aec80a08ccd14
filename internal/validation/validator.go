package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"task-manager/internal/config"
	"task-manager/internal/domain"
)

// emailPattern is deliberately loose: something, @, something, dot, something.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a trimmed string's rune count is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidEmail checks the loose something@something.something shape
func (v *Validator) IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPasswordLength checks the password against the configured minimum.
// Passwords are not trimmed.
func (v *Validator) IsValidPasswordLength(password string) bool {
	return utf8.RuneCountInString(password) >= v.PasswordMinLength()
}

// IsValidTitleLength checks a task title against the configured maximum
func (v *Validator) IsValidTitleLength(title string) bool {
	return v.IsValidStringLength(title, 1, v.TitleMaxLength())
}

// IsValidDueDate reports whether s is empty or a YYYY-MM-DD calendar date
func (v *Validator) IsValidDueDate(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	_, err := time.Parse(domain.DueDateLayout, s)
	return err == nil
}

// IsValidPriority reports whether s is empty or a known priority
func (v *Validator) IsValidPriority(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || domain.Priority(strings.ToLower(s)).IsValid()
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// PasswordMinLength returns configured minimum password length or default
func (v *Validator) PasswordMinLength() int {
	if v.config != nil {
		return v.config.Validation.PasswordMinLength
	}
	return 6 // Default minimum
}

// TitleMaxLength returns configured maximum title length or default
func (v *Validator) TitleMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TitleMaxLength
	}
	return 500 // Default maximum
}
