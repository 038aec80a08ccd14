package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"task-manager/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandSpec describes how a command appears in cobra
type CommandSpec struct {
	Use   string
	Short string
	Long  string
	Args  cobra.PositionalArgs
	// Interactive commands run without the application timeout
	Interactive bool
}

// Describer is implemented by commands that publish a CommandSpec
type Describer interface {
	Spec() CommandSpec
}

// FlagBinder is implemented by commands that take flags
type FlagBinder interface {
	BindFlags(fs *pflag.FlagSet)
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
	order    []string
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	// Account commands
	registry.Register("register", NewRegisterCommand(app))
	registry.Register("login", NewLoginCommand(app))
	registry.Register("logout", NewLogoutCommand(app))
	registry.Register("whoami", NewWhoamiCommand(app))

	// Task commands
	registry.Register("add", NewAddCommand(app))
	registry.Register("list", NewListCommand(app))
	registry.Register("done", NewDoneCommand(app))
	registry.Register("edit", NewEditCommand(app))
	registry.Register("delete", NewDeleteCommand(app))
	registry.Register("stats", NewStatsCommand(app))

	// Tools
	registry.Register("storage", NewStorageCommand(app))
	registry.Register("ui", NewUICommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	if _, exists := r.commands[name]; !exists {
		r.order = append(r.order, name)
	}
	r.commands[name] = command
}

// Names returns command names in registration order
func (r *CommandRegistry) Names() []string {
	return append([]string(nil), r.order...)
}

// Get returns the command registered under name
func (r *CommandRegistry) Get(name string) (Command, bool) {
	command, ok := r.commands[name]
	return command, ok
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	command, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError("command", commandName, "unknown command")
	}
	return command.Execute(ctx, args)
}

// GetUsage returns the usage string for the CLI
func (r *CommandRegistry) GetUsage() string {
	return fmt.Sprintf("usage: tm <%s> [args]", strings.Join(r.order, "|"))
}
