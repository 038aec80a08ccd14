package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"task-manager/internal/services"
)

// AddCommand handles the add command
type AddCommand struct {
	app   *App
	input services.TaskInput
}

// NewAddCommand creates a new add command
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Spec describes the command for cobra
func (c *AddCommand) Spec() CommandSpec {
	return CommandSpec{
		Use:   "add <title...>",
		Short: "Add a task",
		Long: `Add a task at the top of the list. Words after "add" form the title.

Examples:
  tm add Buy milk
  tm add "Write report" --due 2025-03-14 --priority high --desc "Q1 numbers"`,
		Args: cobra.MinimumNArgs(1),
	}
}

// BindFlags binds the optional task fields
func (c *AddCommand) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.input.Description, "desc", "", "Description")
	fs.StringVar(&c.input.DueDate, "due", "", "Due date (YYYY-MM-DD)")
	fs.StringVar(&c.input.Priority, "priority", "medium", "Priority: low, medium or high")
}

// Execute adds the task to the logged-in account
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	ws, err := c.app.workspace(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("add task", err)
	}

	input := c.input
	input.Title = strings.Join(args, " ")

	task, err := ws.AddTask(ctx, input)
	if err != nil {
		return c.app.errorHandler.Handle("add task", err)
	}

	c.app.printf("Added task %s: %s\n", task.ID, task.Title)
	return nil
}
