package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"task-manager/internal/api"
	"task-manager/internal/config"
	"task-manager/internal/repository/sqlite"
	"task-manager/internal/services"
)

// cliHarness runs the root command repeatedly against one in-memory store,
// the way separate tm invocations share one database file.
type cliHarness struct {
	t       *testing.T
	repo    sqlite.Repository
	clock   func() time.Time
	ids     services.IDGenerator
	dataDir string
}

func newHarness(t *testing.T) *cliHarness {
	t.Helper()
	repo, err := sqlite.New(sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	current := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	n := 0
	return &cliHarness{
		t:    t,
		repo: repo,
		clock: func() time.Time {
			now := current
			current = current.Add(time.Minute)
			return now
		},
		ids: func() string {
			n++
			return fmt.Sprintf("id-%02d", n)
		},
		dataDir: t.TempDir(),
	}
}

func (h *cliHarness) setup(cfg *config.Config) (*Dependencies, error) {
	times := services.NewTimeServiceWithClock(h.clock, cfg.Display.DateFormat)
	container := services.NewServiceContainerWithOptions(h.repo, cfg, times, h.ids)
	return &Dependencies{
		BusinessAPI: api.NewBusinessAPI(container),
		StorageAPI:  api.New(h.repo),
		Times:       times,
		Config:      cfg,
	}, nil
}

// run executes one tm invocation with input as stdin
func (h *cliHarness) run(input string, args ...string) (string, error) {
	h.t.Helper()
	var out, errOut bytes.Buffer
	app := NewApp(strings.NewReader(input), &out, &errOut)
	root := NewRootCommand(app, h.setup)
	root.SetArgs(append(args, "--data-dir", h.dataDir, "--plain"))
	err := root.Execute()
	return out.String(), err
}

// mustRun executes one invocation that is expected to succeed
func (h *cliHarness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run("", args...)
	require.NoError(h.t, err, "tm %s", strings.Join(args, " "))
	return out
}

// loggedIn registers and logs in Ann
func (h *cliHarness) loggedIn() *cliHarness {
	h.t.Helper()
	h.mustRun("register", "--email", "ann@example.com", "--name", "Ann", "--password", "secret1", "--confirm", "secret1")
	h.mustRun("login", "--email", "ann@example.com", "--password", "secret1")
	return h
}
