package services

import (
	"context"
	"strings"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/logging"
	"task-manager/internal/repository/sqlite"
	"task-manager/internal/validation"

	"github.com/google/uuid"
)

// taskServiceImpl implements the TaskService interface for one session
type taskServiceImpl struct {
	repo          sqlite.Repository
	store         *accountStore
	session       Session
	timeService   TimeService
	taskValidator *validation.TaskValidator
	newID         IDGenerator
}

// NewTaskService creates a TaskService bound to session. A nil ids generator
// falls back to random UUIDs.
func NewTaskService(repo sqlite.Repository, session Session, timeService TimeService, validator *validation.Validator, ids IDGenerator) TaskService {
	if ids == nil {
		ids = uuid.NewString
	}
	session.Email = domain.NormalizeEmail(session.Email)
	return &taskServiceImpl{
		repo:          repo,
		store:         newAccountStore(repo),
		session:       session,
		timeService:   timeService,
		taskValidator: validation.NewTaskValidator(validator),
		newID:         ids,
	}
}

// Session returns the session this service operates on
func (t *taskServiceImpl) Session() Session {
	return t.session
}

// withAccount loads the store, hands the session's account to fn and saves
// the store when fn reports a change. If the account no longer exists the
// session marker is cleared.
func (t *taskServiceImpl) withAccount(ctx context.Context, fn func(account *domain.Account) (bool, error)) error {
	accounts, err := t.store.load(ctx)
	if err != nil {
		return err
	}

	account, ok := accounts.Get(t.session.Email)
	if !ok {
		logging.Debugf("account %s vanished, clearing session\n", t.session.Email)
		if err := t.repo.ClearSession(ctx); err != nil {
			return err
		}
		return errors.NewNotAuthenticatedError()
	}

	changed, err := fn(account)
	if err != nil || !changed {
		return err
	}
	return t.store.save(ctx, accounts)
}

func (t *taskServiceImpl) validateInput(input TaskInput) error {
	if err := t.taskValidator.ValidateTaskFields(input.Title, input.DueDate, input.Priority); err != nil {
		return wrapValidation(err)
	}
	return nil
}

// Tasks returns the account's tasks in stored order, newest first
func (t *taskServiceImpl) Tasks(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	err := t.withAccount(ctx, func(account *domain.Account) (bool, error) {
		tasks = append([]domain.Task{}, account.Tasks...)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// AddTask validates the form and prepends a new pending task
func (t *taskServiceImpl) AddTask(ctx context.Context, input TaskInput) (*domain.Task, error) {
	if err := t.validateInput(input); err != nil {
		return nil, err
	}

	task := domain.Task{
		ID:          t.newID(),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		DueDate:     strings.TrimSpace(input.DueDate),
		Priority:    t.taskValidator.NormalizePriority(input.Priority),
		CreatedAt:   t.timeService.Now(),
	}

	err := t.withAccount(ctx, func(account *domain.Account) (bool, error) {
		account.PrependTask(task)
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	logging.Debugf("added task %s for %s\n", task.ID, t.session.Email)
	return &task, nil
}

// ToggleComplete flips the completed flag. Unknown ids are ignored.
func (t *taskServiceImpl) ToggleComplete(ctx context.Context, id string) error {
	return t.withAccount(ctx, func(account *domain.Account) (bool, error) {
		idx := account.TaskIndex(id)
		if idx < 0 {
			return false, nil
		}
		account.Tasks[idx].Completed = !account.Tasks[idx].Completed
		return true, nil
	})
}

// DeleteTask removes a task. Unknown ids are ignored.
func (t *taskServiceImpl) DeleteTask(ctx context.Context, id string) error {
	return t.withAccount(ctx, func(account *domain.Account) (bool, error) {
		removed := account.RemoveTask(id)
		if removed {
			logging.Debugf("deleted task %s for %s\n", id, t.session.Email)
		}
		return removed, nil
	})
}

// BeginEdit copies a task's editable fields into an EditContext. The stored
// task is not changed.
func (t *taskServiceImpl) BeginEdit(ctx context.Context, id string) (*EditContext, error) {
	var edit *EditContext
	err := t.withAccount(ctx, func(account *domain.Account) (bool, error) {
		idx := account.TaskIndex(id)
		if idx < 0 {
			return false, errors.NewNotFoundError("task", id)
		}
		task := account.Tasks[idx]
		edit = &EditContext{
			TaskID:      task.ID,
			Title:       task.Title,
			Description: task.Description,
			DueDate:     task.DueDate,
			Priority:    task.Priority.String(),
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return edit, nil
}

// SaveEdit writes the edited fields back over the task in place. Id, position,
// creation time and completion state are kept.
func (t *taskServiceImpl) SaveEdit(ctx context.Context, edit *EditContext) (*domain.Task, error) {
	if edit == nil {
		return nil, errors.NewInvalidInputError("edit", nil, "no edit in progress")
	}
	if err := t.taskValidator.ValidateTaskID(edit.TaskID); err != nil {
		return nil, wrapValidation(err)
	}
	if err := t.validateInput(edit.Input()); err != nil {
		return nil, err
	}

	var saved domain.Task
	err := t.withAccount(ctx, func(account *domain.Account) (bool, error) {
		idx := account.TaskIndex(edit.TaskID)
		if idx < 0 {
			return false, errors.NewNotFoundError("task", edit.TaskID)
		}
		task := &account.Tasks[idx]
		task.Title = strings.TrimSpace(edit.Title)
		task.Description = strings.TrimSpace(edit.Description)
		task.DueDate = strings.TrimSpace(edit.DueDate)
		task.Priority = t.taskValidator.NormalizePriority(edit.Priority)
		saved = *task
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
