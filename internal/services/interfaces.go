package services

import (
	"context"
	"time"

	"task-manager/internal/domain"
)

// Session identifies the logged-in account. It is resolved once and handed to
// everything that works on that account's tasks.
type Session struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// DisplayName falls back to the email when the account has no name.
func (s Session) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Email
}

// RegisterInput is the register form
type RegisterInput struct {
	Email    string
	Name     string
	Password string
	Confirm  string
}

// TaskInput is the add-task form
type TaskInput struct {
	Title       string
	Description string
	DueDate     string
	Priority    string
}

// EditContext holds a task's editable fields while an edit is in progress.
// Discarding it cancels the edit; the stored task is untouched until SaveEdit.
type EditContext struct {
	TaskID      string
	Title       string
	Description string
	DueDate     string
	Priority    string
}

// Input returns the edited fields in add-form shape for validation.
func (e *EditContext) Input() TaskInput {
	return TaskInput{
		Title:       e.Title,
		Description: e.Description,
		DueDate:     e.DueDate,
		Priority:    e.Priority,
	}
}

// Statistics are the counters shown under the task list
type Statistics struct {
	Shown     int `json:"shown"`
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Percent   int `json:"percent"`
}

// IDGenerator returns a fresh opaque task id
type IDGenerator func() string

// TimeService provides the clock and date formatting
type TimeService interface {
	Now() time.Time
	FormatDate(t time.Time) string
	FormatDue(task domain.Task) string
	IsOverdue(task domain.Task) bool
}

// AccountService handles registration, login and the session marker
type AccountService interface {
	Register(ctx context.Context, input RegisterInput) error
	Authenticate(ctx context.Context, email, password string) (*Session, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*Session, error)
}

// TaskService handles the task list of one session's account
type TaskService interface {
	Session() Session
	Tasks(ctx context.Context) ([]domain.Task, error)
	AddTask(ctx context.Context, input TaskInput) (*domain.Task, error)
	ToggleComplete(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) error
	BeginEdit(ctx context.Context, id string) (*EditContext, error)
	SaveEdit(ctx context.Context, edit *EditContext) (*domain.Task, error)
}

// SearchService derives the displayed sequence from the stored one
type SearchService interface {
	ApplyView(tasks []domain.Task, opts domain.ViewOptions) []domain.Task
	ParseViewOptions(search, priority, status, sort string) (domain.ViewOptions, error)
}

// ReportingService computes the aggregate counters
type ReportingService interface {
	Statistics(all, shown []domain.Task) Statistics
	CountByPriority(tasks []domain.Task) map[domain.Priority]int
	Percent(completed, total int) int
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TimeService      TimeService
	AccountService   AccountService
	SearchService    SearchService
	ReportingService ReportingService

	// TasksFor builds the task service for a resolved session
	TasksFor func(session Session) TaskService
}
