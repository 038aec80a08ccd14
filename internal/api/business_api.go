package api

import (
	"context"
	"strings"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/services"
)

// TaskView is the displayed sequence of one account plus its counters
type TaskView struct {
	Session services.Session    `json:"session"`
	Options domain.ViewOptions  `json:"options"`
	Shown   []domain.Task       `json:"shown"`
	Stats   services.Statistics `json:"stats"`
}

// TaskStatistics extends the counters with a per-priority breakdown
type TaskStatistics struct {
	services.Statistics
	ByPriority map[domain.Priority]int `json:"by_priority"`
	Overdue    int                     `json:"overdue"`
}

// BusinessAPI defines the workflows the CLI and TUI drive
type BusinessAPI interface {
	// ========== Account Workflows ==========

	// Register creates an account; it does not log in
	Register(ctx context.Context, input services.RegisterInput) error

	// Login checks credentials and records the session
	Login(ctx context.Context, email, password string) (*services.Session, error)

	// Logout clears the session
	Logout(ctx context.Context) error

	// CurrentSession resolves the stored session, clearing a stale one
	CurrentSession(ctx context.Context) (*services.Session, error)

	// ========== Task Workflows ==========

	// Workspace resolves the current session once and opens its task workflows
	Workspace(ctx context.Context) (Workspace, error)

	// WorkspaceFor opens the task workflows for an already resolved session
	WorkspaceFor(session services.Session) Workspace

	// ParseViewOptions validates raw search, filter and sort values
	ParseViewOptions(search, priority, status, sort string) (domain.ViewOptions, error)
}

// Workspace is the task screen controller for one session
type Workspace interface {
	Session() services.Session

	// View applies the view options and computes the counters
	View(ctx context.Context, opts domain.ViewOptions) (*TaskView, error)

	// ResolveTask finds a task by full id or unique id prefix
	ResolveTask(ctx context.Context, idOrPrefix string) (*domain.Task, error)

	AddTask(ctx context.Context, input services.TaskInput) (*domain.Task, error)
	ToggleTask(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) error

	// BeginEdit starts an edit; discarding the context cancels it
	BeginEdit(ctx context.Context, id string) (*services.EditContext, error)
	SaveEdit(ctx context.Context, edit *services.EditContext) (*domain.Task, error)

	Statistics(ctx context.Context) (*TaskStatistics, error)
}

// businessAPIImpl implements the BusinessAPI interface
type businessAPIImpl struct {
	services *services.ServiceContainer
}

// NewBusinessAPI creates a new BusinessAPI instance
func NewBusinessAPI(container *services.ServiceContainer) BusinessAPI {
	return &businessAPIImpl{services: container}
}

// ========== Account Workflows ==========

func (b *businessAPIImpl) Register(ctx context.Context, input services.RegisterInput) error {
	return b.services.AccountService.Register(ctx, input)
}

func (b *businessAPIImpl) Login(ctx context.Context, email, password string) (*services.Session, error) {
	return b.services.AccountService.Authenticate(ctx, email, password)
}

func (b *businessAPIImpl) Logout(ctx context.Context) error {
	return b.services.AccountService.Logout(ctx)
}

func (b *businessAPIImpl) CurrentSession(ctx context.Context) (*services.Session, error) {
	return b.services.AccountService.CurrentSession(ctx)
}

// ========== Task Workflows ==========

func (b *businessAPIImpl) Workspace(ctx context.Context) (Workspace, error) {
	session, err := b.services.AccountService.CurrentSession(ctx)
	if err != nil {
		return nil, err
	}
	return b.WorkspaceFor(*session), nil
}

func (b *businessAPIImpl) WorkspaceFor(session services.Session) Workspace {
	return &workspaceImpl{
		tasks:     b.services.TasksFor(session),
		search:    b.services.SearchService,
		reporting: b.services.ReportingService,
		times:     b.services.TimeService,
	}
}

func (b *businessAPIImpl) ParseViewOptions(search, priority, status, sort string) (domain.ViewOptions, error) {
	return b.services.SearchService.ParseViewOptions(search, priority, status, sort)
}

// workspaceImpl implements the Workspace interface
type workspaceImpl struct {
	tasks     services.TaskService
	search    services.SearchService
	reporting services.ReportingService
	times     services.TimeService
}

func (w *workspaceImpl) Session() services.Session {
	return w.tasks.Session()
}

func (w *workspaceImpl) View(ctx context.Context, opts domain.ViewOptions) (*TaskView, error) {
	all, err := w.tasks.Tasks(ctx)
	if err != nil {
		return nil, err
	}

	shown := w.search.ApplyView(all, opts)
	return &TaskView{
		Session: w.tasks.Session(),
		Options: opts,
		Shown:   shown,
		Stats:   w.reporting.Statistics(all, shown),
	}, nil
}

func (w *workspaceImpl) ResolveTask(ctx context.Context, idOrPrefix string) (*domain.Task, error) {
	key := strings.TrimSpace(idOrPrefix)
	if key == "" {
		return nil, errors.NewInvalidInputError("id", idOrPrefix, "task id is required")
	}

	all, err := w.tasks.Tasks(ctx)
	if err != nil {
		return nil, err
	}

	var matches []domain.Task
	for _, task := range all {
		if task.ID == key {
			return &task, nil
		}
		if strings.HasPrefix(task.ID, key) {
			matches = append(matches, task)
		}
	}

	switch len(matches) {
	case 0:
		return nil, errors.NewNotFoundError("task", key)
	case 1:
		return &matches[0], nil
	default:
		return nil, errors.NewInvalidInputError("id", key, "matches more than one task").WithContext("matches", len(matches))
	}
}

func (w *workspaceImpl) AddTask(ctx context.Context, input services.TaskInput) (*domain.Task, error) {
	return w.tasks.AddTask(ctx, input)
}

func (w *workspaceImpl) ToggleTask(ctx context.Context, id string) error {
	return w.tasks.ToggleComplete(ctx, id)
}

func (w *workspaceImpl) DeleteTask(ctx context.Context, id string) error {
	return w.tasks.DeleteTask(ctx, id)
}

func (w *workspaceImpl) BeginEdit(ctx context.Context, id string) (*services.EditContext, error) {
	return w.tasks.BeginEdit(ctx, id)
}

func (w *workspaceImpl) SaveEdit(ctx context.Context, edit *services.EditContext) (*domain.Task, error) {
	return w.tasks.SaveEdit(ctx, edit)
}

func (w *workspaceImpl) Statistics(ctx context.Context) (*TaskStatistics, error) {
	all, err := w.tasks.Tasks(ctx)
	if err != nil {
		return nil, err
	}

	stats := &TaskStatistics{
		Statistics: w.reporting.Statistics(all, all),
		ByPriority: w.reporting.CountByPriority(all),
	}
	for _, task := range all {
		if w.times.IsOverdue(task) {
			stats.Overdue++
		}
	}
	return stats, nil
}
