// Package ui is the interactive terminal front end: an auth screen for login
// and registration and a task screen for the logged-in account.
package ui

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"task-manager/internal/api"
	"task-manager/internal/config"
	"task-manager/internal/errors"
	"task-manager/internal/render"
	"task-manager/internal/services"
)

type screen int

const (
	screenAuth screen = iota
	screenTasks
)

// Options wires the model to the business API
type Options struct {
	API    api.BusinessAPI
	Times  services.TimeService
	Config *config.Config
	// Output decides the color profile; defaults to stdout
	Output io.Writer
}

// Model is the root bubbletea model
type Model struct {
	ctx      context.Context
	api      api.BusinessAPI
	cfg      *config.Config
	render   *render.Renderer
	screen   screen
	auth     authForm
	tasks    taskScreen
	quitting bool
}

// New builds the model, opening the task screen directly when a valid session
// is stored.
func New(ctx context.Context, opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	m := Model{
		ctx: ctx,
		api: opts.API,
		cfg: cfg,
		render: render.New(out, opts.Times, render.Options{
			Dark:  cfg.Display.Dark,
			Plain: cfg.Display.Plain,
			ActionKeys: render.ActionKeys{
				Toggle: cfg.Keys.Toggle,
				Edit:   cfg.Keys.Edit,
				Delete: cfg.Keys.Delete,
			},
		}),
		auth: newAuthForm(),
	}

	if session, err := opts.API.CurrentSession(ctx); err == nil {
		return m.openTasks(*session)
	}
	return m
}

// Run starts the program and blocks until the user quits
func Run(ctx context.Context, model Model, in io.Reader, out io.Writer) error {
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	if m.screen == screenAuth {
		return m.auth.focusCmd()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.screen == screenTasks {
			return m.updateTasks(msg)
		}
		return m.updateAuth(msg)
	case tea.WindowSizeMsg:
		m.auth.setWidth(msg.Width)
		m.tasks.setWidth(msg.Width)
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.screen == screenTasks {
		return m.viewTasks()
	}
	return m.viewAuth()
}

// openTasks switches to the task screen for session
func (m Model) openTasks(session services.Session) Model {
	m.screen = screenTasks
	m.tasks = newTaskScreen(m.api.WorkspaceFor(session), m.cfg.ViewDefaults())
	if err := m.tasks.refresh(m.ctx); err != nil {
		m.tasks.err = errors.GetUserMessage(err)
	}
	return m
}

// openAuth switches to the login form with msg shown above it
func (m Model) openAuth(msg string) Model {
	m.screen = screenAuth
	m.tasks = taskScreen{}
	m.auth = newAuthForm()
	m.auth.info = msg
	return m
}

// handleTaskError redirects to login when the session is gone and otherwise
// shows the message on the status line.
func (m Model) handleTaskError(err error) Model {
	if errors.GetErrorCode(err) == errors.CodeNotAuthenticated {
		return m.openAuth("Your session ended. Please log in again.")
	}
	m.tasks.status = ""
	m.tasks.err = errors.GetUserMessage(err)
	return m
}
