package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"task-manager/internal/render"
)

// ListCommand handles the list command
type ListCommand struct {
	app      *App
	search   string
	priority string
	status   string
	sort     string
}

// NewListCommand creates a new list command
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Spec describes the command for cobra
func (c *ListCommand) Spec() CommandSpec {
	return CommandSpec{
		Use:   "list",
		Short: "List tasks",
		Long: `List the logged-in account's tasks with counters.

Search matches title and description, case-insensitively. Filters combine.

Examples:
  tm list
  tm list --search report --status pending
  tm list --priority high --sort due-asc`,
		Args: cobra.NoArgs,
	}
}

// BindFlags binds the view options
func (c *ListCommand) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.search, "search", "", "Case-insensitive text in title or description")
	fs.StringVar(&c.priority, "priority", "", "Priority filter: all, low, medium or high")
	fs.StringVar(&c.status, "status", "", "Status filter: all, pending or completed (default from config)")
	fs.StringVar(&c.sort, "sort", "", "Sort: created-desc, created-asc, due-asc, due-desc or priority-desc (default from config)")
}

// Execute renders the displayed sequence and the counters
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	ws, err := c.app.workspace(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("list tasks", err)
	}

	defaults := c.app.config().ViewDefaults()
	status := c.status
	if status == "" {
		status = string(defaults.Status)
	}
	sort := c.sort
	if sort == "" {
		sort = string(defaults.Sort)
	}

	opts, err := c.app.deps.BusinessAPI.ParseViewOptions(c.search, c.priority, status, sort)
	if err != nil {
		return c.app.errorHandler.Handle("list tasks", err)
	}

	view, err := ws.View(ctx, opts)
	if err != nil {
		return c.app.errorHandler.Handle("list tasks", err)
	}

	r := c.app.renderer()
	c.app.printf("%s\n\n%s\n", r.Greeting(view.Session), r.Page(render.Page{
		Shown:    view.Shown,
		Stats:    view.Stats,
		Selected: -1,
	}))
	return nil
}
