package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// LoginCommand handles the login command
type LoginCommand struct {
	app      *App
	email    string
	password string
}

// NewLoginCommand creates a new login command
func NewLoginCommand(app *App) *LoginCommand {
	return &LoginCommand{app: app}
}

// Spec describes the command for cobra
func (c *LoginCommand) Spec() CommandSpec {
	return CommandSpec{
		Use:   "login",
		Short: "Log in to a local account",
		Long:  "Log in to a local account. Task commands act on the logged-in account until you log out.",
		Args:  cobra.NoArgs,
	}
}

// BindFlags binds the login form fields
func (c *LoginCommand) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.email, "email", "", "Account email")
	fs.StringVar(&c.password, "password", "", "Password")
}

// Execute checks the credentials and records the session
func (c *LoginCommand) Execute(ctx context.Context, args []string) error {
	email, err := c.app.promptIfEmpty(c.email, "Email: ")
	if err != nil {
		return err
	}
	password, err := c.app.promptIfEmpty(c.password, "Password: ")
	if err != nil {
		return err
	}

	session, err := c.app.deps.BusinessAPI.Login(ctx, email, password)
	if err != nil {
		return c.app.errorHandler.Handle("log in", err)
	}

	c.app.printf("Logged in as %s (%s)\n", session.DisplayName(), session.Email)
	return nil
}
