package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// StorageCommand prints what is kept in local storage, without passwords
type StorageCommand struct {
	app *App
}

// NewStorageCommand creates a new storage command
func NewStorageCommand(app *App) *StorageCommand {
	return &StorageCommand{app: app}
}

// Spec describes the command for cobra
func (c *StorageCommand) Spec() CommandSpec {
	return CommandSpec{
		Use:   "storage",
		Short: "Inspect local storage",
		Long:  "List the stored keys and a summary of every account. Passwords are never printed.",
		Args:  cobra.NoArgs,
	}
}

// Execute prints the keys, the session and the accounts
func (c *StorageCommand) Execute(ctx context.Context, args []string) error {
	storage := c.app.deps.StorageAPI

	items, err := storage.StorageItems(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("read storage", err)
	}
	accounts, err := storage.Accounts(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("read storage", err)
	}
	loggedIn, err := storage.LoggedIn(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("read storage", err)
	}

	cfg := c.app.config()
	c.app.printf("Database: %s\n\n", cfg.GetDatabasePath())

	w := tabwriter.NewWriter(c.app.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tSIZE\tUPDATED")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%d\t%s\n", item.Key, item.Size, item.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	c.app.printf("\n")
	w = tabwriter.NewWriter(c.app.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EMAIL\tNAME\tTASKS\tCOMPLETED\t")
	for _, account := range accounts {
		marker := ""
		if account.Email == loggedIn {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", account.Email, account.Name, account.Tasks, account.Completed, marker)
	}
	return w.Flush()
}
