package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"task-manager/internal/api"
	"task-manager/internal/domain"
	"task-manager/internal/render"
	"task-manager/internal/services"
)

type taskMode int

const (
	modeBrowse taskMode = iota
	modeAdd
	modeEdit
	modeSearch
	modeConfirmDelete
)

const (
	formTitle = iota
	formDue
	formPriority
	formDesc
	formFieldCount
)

var formLabels = [formFieldCount]string{"Title", "Due", "Priority", "Description"}

// taskForm backs both the add form and the edit form
type taskForm struct {
	inputs   [formFieldCount]textinput.Model
	priority domain.Priority
	focus    int
}

func newTaskForm() taskForm {
	f := taskForm{priority: domain.PriorityMedium}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 500
		ti.Width = 40
		f.inputs[i] = ti
	}
	f.inputs[formTitle].Placeholder = "What needs doing?"
	f.inputs[formDue].Placeholder = "YYYY-MM-DD"
	f.inputs[formDue].CharLimit = 10
	f.inputs[formDesc].Placeholder = "optional"
	f.setFocus(formTitle)
	return f
}

// clear empties every field and resets the priority to medium
func (f *taskForm) clear() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.priority = domain.PriorityMedium
	f.setFocus(formTitle)
}

func (f *taskForm) load(edit *services.EditContext) {
	f.inputs[formTitle].SetValue(edit.Title)
	f.inputs[formDue].SetValue(edit.DueDate)
	f.inputs[formDesc].SetValue(edit.Description)
	f.priority = domain.Priority(edit.Priority)
	if !f.priority.IsValid() {
		f.priority = domain.PriorityMedium
	}
	f.setFocus(formTitle)
}

func (f taskForm) input() services.TaskInput {
	return services.TaskInput{
		Title:       f.inputs[formTitle].Value(),
		Description: f.inputs[formDesc].Value(),
		DueDate:     f.inputs[formDue].Value(),
		Priority:    string(f.priority),
	}
}

func (f *taskForm) setFocus(field int) {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.focus = field
	if field != formPriority {
		f.inputs[field].Focus()
	}
}

func (f *taskForm) moveFocus(delta int) {
	f.setFocus((f.focus + delta + formFieldCount) % formFieldCount)
}

// cyclePriority steps low → medium → high → low
func (f *taskForm) cyclePriority(delta int) {
	all := domain.Priorities()
	pos := 0
	for i, p := range all {
		if p == f.priority {
			pos = i
		}
	}
	f.priority = all[(pos+delta+len(all))%len(all)]
}

// taskScreen is the state of the task screen for one session
type taskScreen struct {
	ws            api.Workspace
	opts          domain.ViewOptions
	view          *api.TaskView
	cursor        int
	mode          taskMode
	form          taskForm
	edit          *services.EditContext
	search        textinput.Model
	pendingDelete *domain.Task
	status        string
	err           string
}

func newTaskScreen(ws api.Workspace, opts domain.ViewOptions) taskScreen {
	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "search title or description"
	search.Width = 40
	search.SetValue(opts.Search)

	return taskScreen{
		ws:     ws,
		opts:   opts,
		form:   newTaskForm(),
		search: search,
	}
}

func (s *taskScreen) setWidth(width int) {
	w := max(10, width-16)
	for i := range s.form.inputs {
		s.form.inputs[i].Width = w
	}
	s.search.Width = w
}

// refresh recomputes the displayed sequence and keeps the cursor in range
func (s *taskScreen) refresh(ctx context.Context) error {
	view, err := s.ws.View(ctx, s.opts)
	if err != nil {
		return err
	}
	s.view = view
	s.cursor = clampCursor(s.cursor, len(view.Shown))
	return nil
}

func (s taskScreen) selected() (domain.Task, bool) {
	if s.view == nil || len(s.view.Shown) == 0 {
		return domain.Task{}, false
	}
	return s.view.Shown[clampCursor(s.cursor, len(s.view.Shown))], true
}

func (s *taskScreen) setStatus(msg string) {
	s.status = msg
	s.err = ""
}

func (m Model) updateTasks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.tasks.mode {
	case modeAdd, modeEdit:
		return m.updateForm(msg)
	case modeSearch:
		return m.updateSearch(msg)
	case modeConfirmDelete:
		return m.updateConfirmDelete(msg.String())
	}
	return m.updateBrowse(msg.String())
}

func (m Model) updateBrowse(key string) (tea.Model, tea.Cmd) {
	s := &m.tasks
	keys := m.cfg.Keys

	switch key {
	case keys.Quit, "q":
		m.quitting = true
		return m, tea.Quit
	case "down", "j":
		if s.view != nil {
			s.cursor = clampCursor(s.cursor+1, len(s.view.Shown))
		}
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case keys.Add:
		s.mode = modeAdd
		s.edit = nil
		s.form.clear()
		s.setStatus("New task: tab moves between fields, enter adds, ctrl+l clears, esc closes")
	case keys.Toggle:
		task, ok := s.selected()
		if !ok {
			return m, nil
		}
		if err := s.ws.ToggleTask(m.ctx, task.ID); err != nil {
			return m.handleTaskError(err), nil
		}
		if err := s.refresh(m.ctx); err != nil {
			return m.handleTaskError(err), nil
		}
		if task.Completed {
			s.setStatus("Reopened: " + task.Title)
		} else {
			s.setStatus("Completed: " + task.Title)
		}
	case keys.Edit:
		task, ok := s.selected()
		if !ok {
			s.setStatus("No task to edit")
			return m, nil
		}
		edit, err := s.ws.BeginEdit(m.ctx, task.ID)
		if err != nil {
			return m.handleTaskError(err), nil
		}
		s.edit = edit
		s.form.load(edit)
		s.mode = modeEdit
		s.setStatus("Editing: enter saves, esc cancels")
	case keys.Delete:
		task, ok := s.selected()
		if !ok {
			return m, nil
		}
		s.pendingDelete = &task
		s.mode = modeConfirmDelete
		s.setStatus(fmt.Sprintf("Delete this task? %q (y/n)", task.Title))
	case keys.Search:
		s.mode = modeSearch
		s.search.Focus()
		s.setStatus("Search: type to filter, enter keeps, esc clears")
	case keys.CycleSort:
		s.opts.Sort = s.opts.Sort.Next()
		return m.refreshView("Sort: " + string(s.opts.Sort))
	case keys.CycleStatus:
		s.opts.Status = s.opts.Status.Next()
		return m.refreshView("Status: " + string(s.opts.Status))
	case keys.CyclePriority:
		s.opts.Priority = s.opts.Priority.Next()
		return m.refreshView("Priority: " + string(s.opts.Priority))
	case keys.Dark:
		m.render.SetDark(!m.render.Dark())
		if m.render.Dark() {
			s.setStatus("Dark mode on")
		} else {
			s.setStatus("Dark mode off")
		}
	case keys.Logout:
		if err := m.api.Logout(m.ctx); err != nil {
			return m.handleTaskError(err), nil
		}
		return m.openAuth("Logged out."), nil
	}
	return m, nil
}

func (m Model) refreshView(status string) (tea.Model, tea.Cmd) {
	if err := m.tasks.refresh(m.ctx); err != nil {
		return m.handleTaskError(err), nil
	}
	m.tasks.setStatus(status)
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.tasks
	f := &s.form

	switch msg.String() {
	case "esc":
		if s.mode == modeEdit {
			// dropping the edit context is the cancel
			s.edit = nil
			s.setStatus("Edit cancelled")
		} else {
			s.setStatus("")
		}
		s.mode = modeBrowse
		f.clear()
		return m, nil
	case "tab", "down":
		f.moveFocus(1)
		return m, nil
	case "shift+tab", "up":
		f.moveFocus(-1)
		return m, nil
	case "ctrl+l":
		if s.mode == modeAdd {
			f.clear()
			s.setStatus("Form cleared")
		}
		return m, nil
	case "enter":
		return m.submitForm()
	}

	if f.focus == formPriority {
		switch msg.String() {
		case "left", "h":
			f.cyclePriority(-1)
		case "right", "l", " ":
			f.cyclePriority(1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	s := &m.tasks
	input := s.form.input()

	if s.mode == modeEdit {
		edit := *s.edit
		edit.Title = input.Title
		edit.Description = input.Description
		edit.DueDate = input.DueDate
		edit.Priority = input.Priority

		saved, err := s.ws.SaveEdit(m.ctx, &edit)
		if err != nil {
			return m.handleTaskError(err), nil
		}
		s.edit = nil
		s.mode = modeBrowse
		s.form.clear()
		return m.refreshView("Saved: " + saved.Title)
	}

	task, err := s.ws.AddTask(m.ctx, input)
	if err != nil {
		return m.handleTaskError(err), nil
	}
	s.form.clear()
	s.mode = modeBrowse
	s.cursor = 0
	return m.refreshView("Added: " + task.Title)
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.tasks

	switch msg.String() {
	case "esc":
		s.search.SetValue("")
		s.search.Blur()
		s.mode = modeBrowse
		s.opts.Search = ""
		return m.refreshView("Search cleared")
	case "enter":
		s.search.Blur()
		s.mode = modeBrowse
		return m, nil
	}

	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	s.opts.Search = s.search.Value()
	if err := s.refresh(m.ctx); err != nil {
		return m.handleTaskError(err), cmd
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(key string) (tea.Model, tea.Cmd) {
	s := &m.tasks

	switch strings.ToLower(key) {
	case "y":
		task := s.pendingDelete
		s.pendingDelete = nil
		s.mode = modeBrowse
		if task == nil {
			return m, nil
		}
		if err := s.ws.DeleteTask(m.ctx, task.ID); err != nil {
			return m.handleTaskError(err), nil
		}
		return m.refreshView("Deleted: " + task.Title)
	case "n", "esc":
		s.pendingDelete = nil
		s.mode = modeBrowse
		s.setStatus("Delete cancelled")
	}
	return m, nil
}

func (m Model) viewTasks() string {
	s := m.tasks
	var b strings.Builder

	b.WriteString(m.render.Greeting(s.ws.Session()))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Search: %s  Priority: %s  Status: %s  Sort: %s\n",
		emptyAs(s.opts.Search, "-"), s.opts.Priority, s.opts.Status, s.opts.Sort))
	if s.mode == modeSearch {
		b.WriteString(s.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if s.mode == modeAdd || s.mode == modeEdit {
		b.WriteString(m.viewForm())
		b.WriteString("\n")
	}

	if s.view != nil {
		selected := -1
		if s.mode == modeBrowse || s.mode == modeConfirmDelete {
			selected = s.cursor
		}
		b.WriteString(m.render.Page(render.Page{
			Shown:    s.view.Shown,
			Stats:    s.view.Stats,
			Selected: selected,
		}))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if s.err != "" {
		b.WriteString(m.render.Error(s.err))
		b.WriteString("\n")
	} else if s.status != "" {
		b.WriteString(m.render.Status(s.status))
		b.WriteString("\n")
	}
	b.WriteString(m.helpLine())
	return b.String()
}

func (m Model) viewForm() string {
	f := m.tasks.form
	var b strings.Builder

	heading := "New task"
	if m.tasks.mode == modeEdit {
		heading = "Edit task"
	}
	b.WriteString(m.render.Status(heading))
	b.WriteString("\n")

	for i := 0; i < formFieldCount; i++ {
		cursor := "  "
		if i == f.focus {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(padRight(formLabels[i], 12))
		if i == formPriority {
			b.WriteString("< " + strings.ToUpper(f.priority.String()) + " >")
		} else {
			b.WriteString(f.inputs[i].View())
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) helpLine() string {
	k := m.cfg.Keys
	return fmt.Sprintf("j/k move · %s add · %s toggle · %s edit · %s delete · %s search · %s sort · %s status · %s priority · %s theme · %s logout · q quit",
		k.Add, keyName(k.Toggle), k.Edit, k.Delete, k.Search, k.CycleSort, k.CycleStatus, k.CyclePriority, k.Dark, k.Logout)
}

func keyName(key string) string {
	if key == " " {
		return "space"
	}
	return key
}

func emptyAs(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func clampCursor(cur, n int) int {
	if n <= 0 || cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
