package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"task-manager/internal/domain"
)

// StatsCommand prints the counters of the logged-in account
type StatsCommand struct {
	app *App
}

// NewStatsCommand creates a new stats command
func NewStatsCommand(app *App) *StatsCommand {
	return &StatsCommand{app: app}
}

// Spec describes the command for cobra
func (c *StatsCommand) Spec() CommandSpec {
	return CommandSpec{
		Use:   "stats",
		Short: "Show task counters",
		Long:  "Show total, completed and overdue counts, the completion percentage and a per-priority breakdown.",
		Args:  cobra.NoArgs,
	}
}

// Execute prints the statistics
func (c *StatsCommand) Execute(ctx context.Context, args []string) error {
	ws, err := c.app.workspace(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("show statistics", err)
	}

	stats, err := ws.Statistics(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("show statistics", err)
	}

	r := c.app.renderer()
	c.app.printf("%s\n", r.Counters(stats.Statistics))
	c.app.printf("Pending: %d · Overdue: %d\n", stats.Pending, stats.Overdue)

	parts := make([]string, 0, 3)
	for _, p := range []domain.Priority{domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow} {
		parts = append(parts, fmt.Sprintf("%s: %d", strings.ToUpper(p.String()), stats.ByPriority[p]))
	}
	c.app.printf("%s\n", strings.Join(parts, " · "))
	return nil
}
