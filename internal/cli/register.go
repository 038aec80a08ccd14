package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"task-manager/internal/domain"
	"task-manager/internal/services"
)

// RegisterCommand handles the register command
type RegisterCommand struct {
	app   *App
	input services.RegisterInput
}

// NewRegisterCommand creates a new register command
func NewRegisterCommand(app *App) *RegisterCommand {
	return &RegisterCommand{app: app}
}

// Spec describes the command for cobra
func (c *RegisterCommand) Spec() CommandSpec {
	return CommandSpec{
		Use:   "register",
		Short: "Create a local account",
		Long: `Create a local account. Missing values are prompted for.

Passwords are stored in plain text in the data directory. Use a password you
do not use anywhere else. Registering does not log you in.`,
		Args: cobra.NoArgs,
	}
}

// BindFlags binds the register form fields
func (c *RegisterCommand) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.input.Email, "email", "", "Account email")
	fs.StringVar(&c.input.Name, "name", "", "Display name")
	fs.StringVar(&c.input.Password, "password", "", "Password (at least 6 characters, stored in plain text)")
	fs.StringVar(&c.input.Confirm, "confirm", "", "Password confirmation")
}

// Execute creates the account
func (c *RegisterCommand) Execute(ctx context.Context, args []string) error {
	input, err := c.collect()
	if err != nil {
		return err
	}

	if err := c.app.deps.BusinessAPI.Register(ctx, input); err != nil {
		return c.app.errorHandler.Handle("register", err)
	}

	c.app.printf("Account created for %s. Run `tm login` to sign in.\n", domain.NormalizeEmail(input.Email))
	return nil
}

func (c *RegisterCommand) collect() (services.RegisterInput, error) {
	input := c.input
	var err error
	if input.Name, err = c.app.promptIfEmpty(input.Name, "Name: "); err != nil {
		return input, err
	}
	if input.Email, err = c.app.promptIfEmpty(input.Email, "Email: "); err != nil {
		return input, err
	}
	if input.Password, err = c.app.promptIfEmpty(input.Password, "Password: "); err != nil {
		return input, err
	}
	if input.Confirm, err = c.app.promptIfEmpty(input.Confirm, "Confirm password: "); err != nil {
		return input, err
	}
	return input, nil
}
