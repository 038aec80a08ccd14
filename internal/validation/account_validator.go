package validation

import (
	"fmt"

	"task-manager/internal/domain"
)

// Messages shown on the auth screen, checked in this order.
const (
	MsgMissingCredentials = "Please enter email and password."
	MsgInvalidEmail       = "Please enter a valid email."
	MsgMissingName        = "Please enter your name."
	MsgPasswordMismatch   = "Passwords do not match."
)

// AccountValidator validates register and login forms. Each method reports
// only the first failing check.
type AccountValidator struct {
	validator *Validator
}

// NewAccountValidator creates a new account validator
func NewAccountValidator(validator *Validator) *AccountValidator {
	if validator == nil {
		validator = NewValidator()
	}
	return &AccountValidator{validator: validator}
}

// ValidateCredentials checks presence of email and password and the email shape
func (av *AccountValidator) ValidateCredentials(email, password string) error {
	normalized := domain.NormalizeEmail(email)
	if normalized == "" || password == "" {
		return newFieldError("email", ErrorTypeRequired, MsgMissingCredentials)
	}
	if !av.validator.IsValidEmail(normalized) {
		return newFieldError("email", ErrorTypeInvalidFormat, MsgInvalidEmail)
	}
	return nil
}

// ValidateRegistration runs the credential checks followed by name, password
// length and confirmation checks.
func (av *AccountValidator) ValidateRegistration(email, name, password, confirm string) error {
	if err := av.ValidateCredentials(email, password); err != nil {
		return err
	}
	if !av.validator.IsNonEmptyString(name) {
		return newFieldError("name", ErrorTypeRequired, MsgMissingName)
	}
	if !av.validator.IsValidPasswordLength(password) {
		return newFieldError("password", ErrorTypeInvalidLength, PasswordTooShortMessage(av.validator.PasswordMinLength()))
	}
	if password != confirm {
		return newFieldError("confirm", ErrorTypeInvalidValue, MsgPasswordMismatch)
	}
	return nil
}

// ValidateLogin checks a login form before the credentials are looked up
func (av *AccountValidator) ValidateLogin(email, password string) error {
	return av.ValidateCredentials(email, password)
}

// PasswordTooShortMessage formats the minimum length message
func PasswordTooShortMessage(min int) string {
	return fmt.Sprintf("Password must be at least %d characters.", min)
}
