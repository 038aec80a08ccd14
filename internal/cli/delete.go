package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// DeleteCommand removes a task after confirmation
type DeleteCommand struct {
	app *App
	yes bool
}

// NewDeleteCommand creates a new delete command
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Spec describes the command for cobra
func (c *DeleteCommand) Spec() CommandSpec {
	return CommandSpec{
		Use:   "delete <id>",
		Short: "Delete a task",
		Long:  "Delete a task. You are asked to confirm unless --yes is given. This cannot be undone.",
		Args:  cobra.ExactArgs(1),
		// waits on the confirmation prompt
		Interactive: true,
	}
}

// BindFlags binds --yes
func (c *DeleteCommand) BindFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&c.yes, "yes", "y", false, "Delete without asking")
}

// Execute asks for confirmation and deletes the task
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	ws, err := c.app.workspace(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("delete task", err)
	}

	task, err := ws.ResolveTask(ctx, args[0])
	if err != nil {
		return c.app.errorHandler.Handle("delete task", err)
	}

	if !c.yes {
		c.app.printf("%s\n", task.Title)
		ok, err := c.app.confirm("Delete this task?")
		if err != nil {
			return err
		}
		if !ok {
			c.app.printf("Delete cancelled.\n")
			return nil
		}
	}

	if err := ws.DeleteTask(ctx, task.ID); err != nil {
		return c.app.errorHandler.Handle("delete task", err)
	}
	c.app.printf("Deleted: %s\n", task.Title)
	return nil
}
