package ui

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"task-manager/internal/api"
	"task-manager/internal/config"
	"task-manager/internal/repository/sqlite"
	"task-manager/internal/services"
)

type testEnv struct {
	api   api.BusinessAPI
	times services.TimeService
	repo  sqlite.Repository
	cfg   *config.Config
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	repo, err := sqlite.New(sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	current := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		now := current
		current = current.Add(time.Minute)
		return now
	}
	n := 0
	ids := func() string {
		n++
		return fmt.Sprintf("id-%02d", n)
	}

	cfg := config.NewConfig()
	cfg.Display.Plain = true
	times := services.NewTimeServiceWithClock(clock, cfg.Display.DateFormat)
	container := services.NewServiceContainerWithOptions(repo, cfg, times, ids)

	return &testEnv{api: api.NewBusinessAPI(container), times: times, repo: repo, cfg: cfg}
}

func (e *testEnv) model() Model {
	return New(context.Background(), Options{
		API:    e.api,
		Times:  e.times,
		Config: e.cfg,
		Output: io.Discard,
	})
}

// register creates an account directly through the API
func (e *testEnv) register(t *testing.T, email, name, password string) {
	t.Helper()
	require.NoError(t, e.api.Register(context.Background(), services.RegisterInput{
		Email: email, Name: name, Password: password, Confirm: password,
	}))
}

// loggedInModel returns a model already on the task screen
func (e *testEnv) loggedInModel(t *testing.T) Model {
	t.Helper()
	e.register(t, "ann@example.com", "Ann", "secret1")
	_, err := e.api.Login(context.Background(), "ann@example.com", "secret1")
	require.NoError(t, err)
	m := e.model()
	require.Equal(t, screenTasks, m.screen)
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// press sends each key to the model in order
func press(m Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m
}

// typeText sends s as one run of typed characters
func typeText(m Model, s string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(Model)
}

func shownTitles(m Model) []string {
	if m.tasks.view == nil {
		return nil
	}
	titles := make([]string, 0, len(m.tasks.view.Shown))
	for _, task := range m.tasks.view.Shown {
		titles = append(titles, task.Title)
	}
	return titles
}

// addTask drives the add form
func addTask(m Model, title, due, desc string) Model {
	m = press(m, "a")
	m = typeText(m, title)
	if due != "" {
		m = press(m, "tab")
		m = typeText(m, due)
		m = press(m, "shift+tab")
	}
	if desc != "" {
		m = press(m, "tab", "tab", "tab")
		m = typeText(m, desc)
	}
	return press(m, "enter")
}
