package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"task-manager/internal/api"
	"task-manager/internal/config"
	"task-manager/internal/render"
	"task-manager/internal/repository/sqlite"
	"task-manager/internal/services"
)

// Dependencies are what commands need once configuration is known
type Dependencies struct {
	BusinessAPI api.BusinessAPI
	StorageAPI  api.API
	Times       services.TimeService
	Config      *config.Config
	Close       func() error
}

// Setup builds Dependencies from the loaded configuration
type Setup func(cfg *config.Config) (*Dependencies, error)

// DefaultSetup opens the SQLite repository described by cfg
func DefaultSetup(cfg *config.Config) (*Dependencies, error) {
	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return nil, err
	}
	return NewDependencies(repo, cfg), nil
}

// NewDependencies wires the services over repo. Close closes repo.
func NewDependencies(repo sqlite.Repository, cfg *config.Config) *Dependencies {
	container := services.NewServiceContainer(repo, cfg)
	return &Dependencies{
		BusinessAPI: api.NewBusinessAPI(container),
		StorageAPI:  api.New(repo),
		Times:       container.TimeService,
		Config:      cfg,
		Close:       repo.Close,
	}
}

// App represents the main CLI application
type App struct {
	deps         *Dependencies
	in           *bufio.Reader
	out          io.Writer
	errOut       io.Writer
	errorHandler *ErrorHandler
	registry     *CommandRegistry
}

// NewApp creates the application with its command registry. Configure must
// be called before any command runs.
func NewApp(in io.Reader, out, errOut io.Writer) *App {
	app := &App{
		in:           bufio.NewReader(in),
		out:          out,
		errOut:       errOut,
		errorHandler: NewErrorHandler(),
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Configure injects the dependencies built for the current run
func (a *App) Configure(deps *Dependencies) {
	a.deps = deps
}

// Close releases the dependencies
func (a *App) Close() error {
	if a.deps == nil || a.deps.Close == nil {
		return nil
	}
	return a.deps.Close()
}

// Registry returns the command registry
func (a *App) Registry() *CommandRegistry {
	return a.registry
}

// Run executes the command named by args[0] without cobra
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", a.registry.GetUsage())
	}
	return a.registry.Execute(ctx, args[0], args[1:])
}

func (a *App) config() *config.Config {
	if a.deps == nil || a.deps.Config == nil {
		return config.NewConfig()
	}
	return a.deps.Config
}

// renderer builds a renderer for CLI output, with task ids shown
func (a *App) renderer() *render.Renderer {
	cfg := a.config()
	return render.New(a.out, a.deps.Times, render.Options{
		Dark:    cfg.Display.Dark,
		Plain:   cfg.Display.Plain,
		ShowIDs: true,
	})
}

func (a *App) workspace(ctx context.Context) (api.Workspace, error) {
	return a.deps.BusinessAPI.Workspace(ctx)
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

// prompt reads one line from the input, without the trailing newline
func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)
	line, err := a.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptIfEmpty returns value, or asks for it when empty
func (a *App) promptIfEmpty(value, label string) (string, error) {
	if value != "" {
		return value, nil
	}
	return a.prompt(label)
}

// confirm asks a yes/no question; anything but y or yes is no
func (a *App) confirm(question string) (bool, error) {
	answer, err := a.prompt(question + " [y/N] ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
