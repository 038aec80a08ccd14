// Package render turns the displayed task sequence and its counters into
// terminal text. The CLI and the TUI share it.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"task-manager/internal/domain"
	"task-manager/internal/services"
)

// DefaultBarWidth is the progress bar width in cells
const DefaultBarWidth = 20

// Options controls appearance. Dark only changes colors and is never persisted.
type Options struct {
	Dark     bool
	Plain    bool // no ANSI escapes, for pipes and tests
	ShowIDs  bool // print task ids for use with done, edit and delete
	BarWidth int
	// ActionKeys adds key hints in front of the action labels
	ActionKeys ActionKeys
}

// ActionKeys are optional key hints shown before each action label
type ActionKeys struct {
	Toggle string
	Edit   string
	Delete string
}

// Page is everything one render needs
type Page struct {
	Shown    []domain.Task
	Stats    services.Statistics
	Selected int // index into Shown, -1 for no cursor
}

// Renderer renders pages with one lipgloss renderer
type Renderer struct {
	lg     *lipgloss.Renderer
	times  services.TimeService
	opts   Options
	styles styles
}

// New creates a Renderer writing styles suitable for w. A nil times uses the
// system clock and the default date format.
func New(w io.Writer, times services.TimeService, opts Options) *Renderer {
	if times == nil {
		times = services.NewTimeService("")
	}
	lg := lipgloss.NewRenderer(w)
	if opts.Plain {
		lg.SetColorProfile(termenv.Ascii)
	}
	lg.SetHasDarkBackground(opts.Dark)
	if opts.BarWidth <= 0 {
		opts.BarWidth = DefaultBarWidth
	}

	r := &Renderer{lg: lg, times: times, opts: opts}
	r.applyTheme()
	return r
}

func (r *Renderer) applyTheme() {
	theme := LightTheme()
	if r.opts.Dark {
		theme = DarkTheme()
	}
	r.styles = newStyles(r.lg, theme)
}

// Dark reports whether the dark palette is active
func (r *Renderer) Dark() bool {
	return r.opts.Dark
}

// SetDark switches palettes
func (r *Renderer) SetDark(dark bool) {
	r.opts.Dark = dark
	r.lg.SetHasDarkBackground(dark)
	r.applyTheme()
}

// Greeting renders "Hi, <name>"
func (r *Renderer) Greeting(session services.Session) string {
	return r.styles.greeting.Render("Hi, " + session.DisplayName())
}

// Page renders the task list followed by the counters
func (r *Renderer) Page(page Page) string {
	var b strings.Builder
	b.WriteString(r.TaskList(page.Shown, page.Stats.Total, page.Selected))
	b.WriteString("\n")
	b.WriteString(r.Counters(page.Stats))
	return b.String()
}

// TaskList renders each task as a block separated by blank lines
func (r *Renderer) TaskList(tasks []domain.Task, total, selected int) string {
	if len(tasks) == 0 {
		if total == 0 {
			return r.styles.meta.Render("No tasks yet.") + "\n"
		}
		return r.styles.meta.Render("No tasks match the current filters.") + "\n"
	}

	blocks := make([]string, 0, len(tasks))
	for i, task := range tasks {
		blocks = append(blocks, r.Task(task, i == selected))
	}
	return strings.Join(blocks, "\n") + "\n"
}

// Task renders one task block
func (r *Renderer) Task(task domain.Task, selected bool) string {
	prefix := "  "
	if selected {
		prefix = r.styles.cursor.Render(">") + " "
	}

	check := "[ ]"
	titleStyle := r.styles.title
	if task.Completed {
		check = "[x]"
		titleStyle = r.styles.done
	}

	head := fmt.Sprintf("%s%s %s %s", prefix, check, titleStyle.Render(task.Title), r.tag(task.Priority))
	if r.opts.ShowIDs {
		head += " " + r.styles.meta.Render("#"+task.ID)
	}

	lines := []string{head}
	indent := "      "
	if task.Description != "" {
		lines = append(lines, indent+r.styles.desc.Render(task.Description))
	}
	lines = append(lines, indent+r.dueAndCreated(task))
	lines = append(lines, indent+r.actions(task))

	return strings.Join(lines, "\n")
}

func (r *Renderer) tag(p domain.Priority) string {
	label := strings.ToUpper(p.String())
	if label == "" {
		label = "NONE"
	}
	return r.lg.NewStyle().Foreground(PriorityColor(p)).Bold(true).Render(label)
}

func (r *Renderer) dueAndCreated(task domain.Task) string {
	due := r.styles.meta.Render("No due date")
	if task.HasDueDate() {
		text := "Due: " + r.times.FormatDue(task)
		if r.times.IsOverdue(task) {
			due = r.styles.overdue.Render(text + " (overdue)")
		} else {
			due = r.styles.meta.Render(text)
		}
	}
	return due + r.styles.meta.Render(" · Created: "+r.times.FormatDate(task.CreatedAt))
}

func (r *Renderer) actions(task domain.Task) string {
	toggle := "Complete"
	if task.Completed {
		toggle = "Undo"
	}
	labels := []string{
		withKey(r.opts.ActionKeys.Toggle, toggle),
		withKey(r.opts.ActionKeys.Edit, "Edit"),
		withKey(r.opts.ActionKeys.Delete, "Delete"),
	}
	for i, label := range labels {
		labels[i] = r.styles.action.Render(label)
	}
	return strings.Join(labels, "  ")
}

func withKey(key, label string) string {
	switch key {
	case "":
		return label
	case " ":
		return "[space] " + label
	default:
		return "[" + key + "] " + label
	}
}

// Counters renders "<n> shown · <t> total · <c> completed · <p>%" and a progress bar
func (r *Renderer) Counters(stats services.Statistics) string {
	line := fmt.Sprintf("%d shown · %d total · %d completed · %d%%",
		stats.Shown, stats.Total, stats.Completed, stats.Percent)
	return r.styles.counters.Render(line) + "\n" + r.ProgressBar(stats.Percent)
}

// ProgressBar renders a fixed-width bar filled to percent
func (r *Renderer) ProgressBar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	width := r.opts.BarWidth
	filled := (percent*width + 50) / 100
	return "[" + r.styles.barFull.Render(strings.Repeat("#", filled)) +
		r.styles.barEmpty.Render(strings.Repeat("-", width-filled)) + "]"
}

// Status renders an informational line
func (r *Renderer) Status(msg string) string {
	return r.styles.status.Render(msg)
}

// Error renders an error line
func (r *Renderer) Error(msg string) string {
	return r.styles.errorLine.Render(msg)
}
