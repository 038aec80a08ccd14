package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// LogoutCommand handles the logout command
type LogoutCommand struct {
	app *App
}

// NewLogoutCommand creates a new logout command
func NewLogoutCommand(app *App) *LogoutCommand {
	return &LogoutCommand{app: app}
}

// Spec describes the command for cobra
func (c *LogoutCommand) Spec() CommandSpec {
	return CommandSpec{
		Use:   "logout",
		Short: "Log out of the current account",
		Args:  cobra.NoArgs,
	}
}

// Execute clears the session marker
func (c *LogoutCommand) Execute(ctx context.Context, args []string) error {
	if err := c.app.deps.BusinessAPI.Logout(ctx); err != nil {
		return c.app.errorHandler.Handle("log out", err)
	}
	c.app.printf("Logged out.\n")
	return nil
}
