package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// WhoamiCommand prints the logged-in account
type WhoamiCommand struct {
	app *App
}

// NewWhoamiCommand creates a new whoami command
func NewWhoamiCommand(app *App) *WhoamiCommand {
	return &WhoamiCommand{app: app}
}

// Spec describes the command for cobra
func (c *WhoamiCommand) Spec() CommandSpec {
	return CommandSpec{
		Use:   "whoami",
		Short: "Show the logged-in account",
		Args:  cobra.NoArgs,
	}
}

// Execute prints "<name> <email>", or just the email for unnamed accounts
func (c *WhoamiCommand) Execute(ctx context.Context, args []string) error {
	session, err := c.app.deps.BusinessAPI.CurrentSession(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("show current account", err)
	}

	if session.Name == "" {
		c.app.printf("%s\n", session.Email)
		return nil
	}
	c.app.printf("%s <%s>\n", session.Name, session.Email)
	return nil
}
