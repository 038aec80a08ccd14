package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"task-manager/internal/errors"
)

// EditCommand replaces fields of an existing task
type EditCommand struct {
	app         *App
	flags       *pflag.FlagSet
	title       string
	description string
	dueDate     string
	priority    string
}

// NewEditCommand creates a new edit command
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{app: app}
}

// Spec describes the command for cobra
func (c *EditCommand) Spec() CommandSpec {
	return CommandSpec{
		Use:   "edit <id>",
		Short: "Edit a task",
		Long: `Edit a task in place. Only the fields given as flags change; the task keeps
its id, creation time, completed flag and position. Pass an empty value to
clear the description or due date.

Examples:
  tm edit 3f2a --title "Write final report"
  tm edit 3f2a --due ""`,
		Args: cobra.ExactArgs(1),
	}
}

// BindFlags binds the editable fields
func (c *EditCommand) BindFlags(fs *pflag.FlagSet) {
	c.flags = fs
	fs.StringVar(&c.title, "title", "", "New title")
	fs.StringVar(&c.description, "desc", "", "New description")
	fs.StringVar(&c.dueDate, "due", "", "New due date (YYYY-MM-DD)")
	fs.StringVar(&c.priority, "priority", "", "New priority: low, medium or high")
}

func (c *EditCommand) changed(name string) bool {
	return c.flags != nil && c.flags.Changed(name)
}

// Execute loads the task into an edit context, applies the flags and saves
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if !c.changed("title") && !c.changed("desc") && !c.changed("due") && !c.changed("priority") {
		return c.app.errorHandler.Handle("edit task",
			errors.NewInvalidInputError("flags", "", "nothing to change, pass --title, --desc, --due or --priority"))
	}

	ws, err := c.app.workspace(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("edit task", err)
	}

	task, err := ws.ResolveTask(ctx, args[0])
	if err != nil {
		return c.app.errorHandler.Handle("edit task", err)
	}

	edit, err := ws.BeginEdit(ctx, task.ID)
	if err != nil {
		return c.app.errorHandler.Handle("edit task", err)
	}
	if c.changed("title") {
		edit.Title = c.title
	}
	if c.changed("desc") {
		edit.Description = c.description
	}
	if c.changed("due") {
		edit.DueDate = c.dueDate
	}
	if c.changed("priority") {
		edit.Priority = c.priority
	}

	saved, err := ws.SaveEdit(ctx, edit)
	if err != nil {
		return c.app.errorHandler.Handle("edit task", err)
	}

	c.app.printf("Updated task %s: %s\n", saved.ID, saved.Title)
	return nil
}
