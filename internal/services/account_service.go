package services

import (
	"context"
	stderrors "errors"
	"strings"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/logging"
	"task-manager/internal/repository/sqlite"
	"task-manager/internal/validation"
)

// accountServiceImpl implements the AccountService interface.
// Passwords are stored and compared in plaintext.
type accountServiceImpl struct {
	repo      sqlite.Repository
	store     *accountStore
	validator *validation.AccountValidator
}

// NewAccountService creates a new AccountService instance
func NewAccountService(repo sqlite.Repository, validator *validation.Validator) AccountService {
	return &accountServiceImpl{
		repo:      repo,
		store:     newAccountStore(repo),
		validator: validation.NewAccountValidator(validator),
	}
}

// wrapValidation turns a field-level failure into an AppError carrying the
// message shown to the user
func wrapValidation(err error) error {
	var ve *validation.ValidationError
	if !stderrors.As(err, &ve) {
		return err
	}
	return errors.NewValidationError(ve.GetUserFriendlyMessage(), ve).WithContext("field", ve.FirstField())
}

// Register creates an account with an empty task list. It does not log in.
func (a *accountServiceImpl) Register(ctx context.Context, input RegisterInput) error {
	if err := a.validator.ValidateRegistration(input.Email, input.Name, input.Password, input.Confirm); err != nil {
		return wrapValidation(err)
	}

	accounts, err := a.store.load(ctx)
	if err != nil {
		return err
	}

	email := domain.NormalizeEmail(input.Email)
	if accounts.Exists(email) {
		return errors.NewAccountExistsError(email)
	}

	accounts.Put(domain.NewAccount(email, strings.TrimSpace(input.Name), input.Password))
	if err := a.store.save(ctx, accounts); err != nil {
		return err
	}

	logging.Debugf("registered account %s\n", email)
	return nil
}

// Authenticate checks credentials and records the session marker on success.
// Unknown emails and wrong passwords produce the same error.
func (a *accountServiceImpl) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	if err := a.validator.ValidateLogin(email, password); err != nil {
		return nil, wrapValidation(err)
	}

	accounts, err := a.store.load(ctx)
	if err != nil {
		return nil, err
	}

	account, ok := accounts.Get(email)
	if !ok || !account.PasswordMatches(password) {
		logging.Debugf("login failed for %s\n", domain.NormalizeEmail(email))
		return nil, errors.NewAuthError()
	}

	if err := a.repo.SetSession(ctx, account.Email); err != nil {
		return nil, err
	}

	logging.Debugf("logged in as %s\n", account.Email)
	return &Session{Email: account.Email, Name: account.Name}, nil
}

// Logout clears the session marker unconditionally
func (a *accountServiceImpl) Logout(ctx context.Context) error {
	return a.repo.ClearSession(ctx)
}

// CurrentSession resolves the session marker. A marker pointing at an account
// that no longer exists is cleared.
func (a *accountServiceImpl) CurrentSession(ctx context.Context) (*Session, error) {
	marker, err := a.repo.GetSession(ctx)
	if err != nil {
		return nil, err
	}
	email := domain.NormalizeEmail(marker)
	if email == "" {
		return nil, errors.NewNotAuthenticatedError()
	}

	accounts, err := a.store.load(ctx)
	if err != nil {
		return nil, err
	}

	account, ok := accounts.Get(email)
	if !ok {
		logging.Debugf("session marker %s has no account, logging out\n", email)
		if err := a.repo.ClearSession(ctx); err != nil {
			return nil, err
		}
		return nil, errors.NewNotAuthenticatedError()
	}

	return &Session{Email: account.Email, Name: account.Name}, nil
}
