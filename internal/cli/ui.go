package cli

import (
	"context"

	"github.com/spf13/cobra"

	"task-manager/internal/ui"
)

// UICommand starts the interactive terminal UI
type UICommand struct {
	app *App
}

// NewUICommand creates a new ui command
func NewUICommand(app *App) *UICommand {
	return &UICommand{app: app}
}

// Spec describes the command for cobra
func (c *UICommand) Spec() CommandSpec {
	return CommandSpec{
		Use:         "ui",
		Short:       "Start the interactive terminal UI",
		Long:        "Start the interactive terminal UI with login, registration and the task screen.",
		Args:        cobra.NoArgs,
		Interactive: true,
	}
}

// Execute runs the UI until the user quits
func (c *UICommand) Execute(ctx context.Context, args []string) error {
	model := ui.New(ctx, ui.Options{
		API:    c.app.deps.BusinessAPI,
		Times:  c.app.deps.Times,
		Config: c.app.config(),
		Output: c.app.out,
	})
	if err := ui.Run(ctx, model, c.app.in, c.app.out); err != nil {
		return c.app.errorHandler.Handle("run terminal UI", err)
	}
	return nil
}
