package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"task-manager/internal/domain"
	"task-manager/internal/services"
)

var today = time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)

func setupRenderer(opts Options) *Renderer {
	opts.Plain = true
	times := services.NewTimeServiceWithClock(func() time.Time { return today }, "")
	return New(&bytes.Buffer{}, times, opts)
}

func sampleTask() domain.Task {
	return domain.Task{
		ID:        "task-1",
		Title:     "Buy milk",
		Priority:  domain.PriorityHigh,
		DueDate:   "2025-04-01",
		CreatedAt: today,
	}
}

func TestRenderer_Task(t *testing.T) {
	r := setupRenderer(Options{})

	expected := strings.Join([]string{
		"  [ ] Buy milk HIGH",
		"      Due: 2025-04-01 · Created: 2025-03-10",
		"      Complete  Edit  Delete",
	}, "\n")
	assert.Equal(t, expected, r.Task(sampleTask(), false))
}

func TestRenderer_TaskVariants(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		modify   func(task *domain.Task)
		selected bool
		contains []string
		excludes []string
	}{
		{
			name:     "completed task shows undo",
			modify:   func(task *domain.Task) { task.Completed = true },
			contains: []string{"[x] Buy milk", "Undo  Edit  Delete"},
			excludes: []string{"Complete"},
		},
		{
			name:     "no due date",
			modify:   func(task *domain.Task) { task.DueDate = "" },
			contains: []string{"No due date · Created: 2025-03-10"},
		},
		{
			name:     "overdue pending task",
			modify:   func(task *domain.Task) { task.DueDate = "2025-03-01" },
			contains: []string{"Due: 2025-03-01 (overdue)"},
		},
		{
			name: "completed task is never overdue",
			modify: func(task *domain.Task) {
				task.DueDate = "2025-03-01"
				task.Completed = true
			},
			excludes: []string{"overdue"},
		},
		{
			name:     "description on its own line",
			modify:   func(task *domain.Task) { task.Description = "2 litres" },
			contains: []string{"\n      2 litres\n"},
		},
		{
			name:     "unknown priority",
			modify:   func(task *domain.Task) { task.Priority = domain.Priority("someday") },
			contains: []string{"Buy milk SOMEDAY"},
		},
		{
			name:     "ids for the cli",
			opts:     Options{ShowIDs: true},
			contains: []string{"Buy milk HIGH #task-1"},
		},
		{
			name:     "key hints for the tui",
			opts:     Options{ActionKeys: ActionKeys{Toggle: " ", Edit: "e", Delete: "d"}},
			contains: []string{"[space] Complete  [e] Edit  [d] Delete"},
		},
		{
			name:     "cursor on selected task",
			selected: true,
			contains: []string{"> [ ] Buy milk"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRenderer(tt.opts)
			task := sampleTask()
			if tt.modify != nil {
				tt.modify(&task)
			}

			out := r.Task(task, tt.selected)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRenderer_TaskListEmpty(t *testing.T) {
	r := setupRenderer(Options{})

	assert.Equal(t, "No tasks yet.\n", r.TaskList(nil, 0, -1))
	assert.Equal(t, "No tasks match the current filters.\n", r.TaskList(nil, 3, -1))
}

func TestRenderer_Counters(t *testing.T) {
	r := setupRenderer(Options{})

	out := r.Counters(services.Statistics{Shown: 1, Total: 2, Completed: 1, Pending: 1, Percent: 50})
	assert.Equal(t, "1 shown · 2 total · 1 completed · 50%\n[##########----------]", out)
}

func TestRenderer_ProgressBar(t *testing.T) {
	r := setupRenderer(Options{BarWidth: 10})

	assert.Equal(t, "[----------]", r.ProgressBar(0))
	assert.Equal(t, "[###-------]", r.ProgressBar(33))
	assert.Equal(t, "[#######---]", r.ProgressBar(67))
	assert.Equal(t, "[##########]", r.ProgressBar(100))
	assert.Equal(t, "[##########]", r.ProgressBar(140))
	assert.Equal(t, "[----------]", r.ProgressBar(-5))
}

func TestRenderer_Page(t *testing.T) {
	r := setupRenderer(Options{})

	other := sampleTask()
	other.ID = "task-2"
	other.Title = "Walk dog"
	other.Priority = domain.PriorityLow

	out := r.Page(Page{
		Shown:    []domain.Task{sampleTask(), other},
		Stats:    services.Statistics{Shown: 2, Total: 2},
		Selected: 1,
	})

	assert.Contains(t, out, "  [ ] Buy milk HIGH")
	assert.Contains(t, out, "> [ ] Walk dog LOW")
	assert.True(t, strings.Index(out, "Buy milk") < strings.Index(out, "Walk dog"))
	assert.True(t, strings.HasSuffix(out, "2 shown · 2 total · 0 completed · 0%\n[--------------------]"))
}

func TestRenderer_Greeting(t *testing.T) {
	r := setupRenderer(Options{})

	assert.Equal(t, "Hi, Foo", r.Greeting(services.Session{Email: "foo@bar.com", Name: "Foo"}))
	assert.Equal(t, "Hi, foo@bar.com", r.Greeting(services.Session{Email: "foo@bar.com"}))
}

func TestRenderer_ColorOutput(t *testing.T) {
	times := services.NewTimeServiceWithClock(func() time.Time { return today }, "")
	r := New(&bytes.Buffer{}, times, Options{})
	r.lg.SetColorProfile(termenv.TrueColor)
	r.applyTheme()

	task := sampleTask()
	task.Completed = true
	out := r.Task(task, false)

	assert.Contains(t, out, "\x1b[")
	// strikethrough is SGR 9
	assert.Regexp(t, `\x1b\[[0-9;]*9[;m]`, out)

	r.SetDark(true)
	assert.True(t, r.Dark())
	assert.NotEqual(t, out, r.Task(task, false))
}

func TestPriorityColor(t *testing.T) {
	assert.Equal(t, ColorHigh, string(PriorityColor(domain.PriorityHigh)))
	assert.Equal(t, ColorMedium, string(PriorityColor(domain.PriorityMedium)))
	assert.Equal(t, ColorLow, string(PriorityColor(domain.PriorityLow)))
	assert.Equal(t, ColorLow, string(PriorityColor(domain.Priority("other"))))
}
