package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// DoneCommand toggles a task's completed flag
type DoneCommand struct {
	app *App
}

// NewDoneCommand creates a new done command
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{app: app}
}

// Spec describes the command for cobra
func (c *DoneCommand) Spec() CommandSpec {
	return CommandSpec{
		Use:   "done <id>",
		Short: "Mark a task completed, or pending again",
		Long:  "Toggle a task's completed flag. The id may be shortened to a unique prefix.",
		Args:  cobra.ExactArgs(1),
	}
}

// Execute toggles the task
func (c *DoneCommand) Execute(ctx context.Context, args []string) error {
	ws, err := c.app.workspace(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("toggle task", err)
	}

	task, err := ws.ResolveTask(ctx, args[0])
	if err != nil {
		return c.app.errorHandler.Handle("toggle task", err)
	}
	if err := ws.ToggleTask(ctx, task.ID); err != nil {
		return c.app.errorHandler.Handle("toggle task", err)
	}

	if task.Completed {
		c.app.printf("Reopened: %s\n", task.Title)
	} else {
		c.app.printf("Completed: %s\n", task.Title)
	}
	return nil
}
