package domain

import (
	"time"

	"task-manager/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and stored Task records.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to its stored record.
func (m *TaskMapper) ToDatabase(task Task) sqlite.TaskRecord {
	record := sqlite.TaskRecord{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Priority:    string(task.Priority),
		Completed:   task.Completed,
	}
	if !task.CreatedAt.IsZero() {
		record.CreatedAt = sqlite.FormatTimeForDB(task.CreatedAt)
	}
	return record
}

// FromDatabase converts a stored record to a domain Task. An unreadable
// creation time becomes the zero time, which sorts as the oldest.
func (m *TaskMapper) FromDatabase(record sqlite.TaskRecord) Task {
	var createdAt time.Time
	if record.CreatedAt != "" {
		if ts, err := sqlite.ParseTimeFromDB(record.CreatedAt); err == nil {
			createdAt = ts
		}
	}
	return Task{
		ID:          record.ID,
		Title:       record.Title,
		Description: record.Description,
		DueDate:     record.DueDate,
		Priority:    Priority(record.Priority),
		Completed:   record.Completed,
		CreatedAt:   createdAt,
	}
}

// ToDatabaseSlice converts a slice of domain Tasks; the result is never nil.
func (m *TaskMapper) ToDatabaseSlice(tasks []Task) []sqlite.TaskRecord {
	records := make([]sqlite.TaskRecord, len(tasks))
	for i, task := range tasks {
		records[i] = m.ToDatabase(task)
	}
	return records
}

// FromDatabaseSlice converts a slice of stored records; the result is never nil.
func (m *TaskMapper) FromDatabaseSlice(records []sqlite.TaskRecord) []Task {
	tasks := make([]Task, len(records))
	for i, record := range records {
		tasks[i] = m.FromDatabase(record)
	}
	return tasks
}

// AccountMapper handles conversion between Accounts and the stored users blob.
type AccountMapper struct {
	tasks *TaskMapper
}

// NewAccountMapper creates a new AccountMapper instance.
func NewAccountMapper(tasks *TaskMapper) *AccountMapper {
	return &AccountMapper{tasks: tasks}
}

// ToDatabase converts an Account to its stored record.
func (m *AccountMapper) ToDatabase(account *Account) sqlite.UserRecord {
	return sqlite.UserRecord{
		Name:     account.Name,
		Password: account.Password,
		Tasks:    m.tasks.ToDatabaseSlice(account.Tasks),
	}
}

// FromDatabase converts a stored record keyed by email to an Account.
func (m *AccountMapper) FromDatabase(email string, record sqlite.UserRecord) *Account {
	return &Account{
		Email:    NormalizeEmail(email),
		Name:     record.Name,
		Password: record.Password,
		Tasks:    m.tasks.FromDatabaseSlice(record.Tasks),
	}
}

// ToUsers converts the whole account map to a users blob.
func (m *AccountMapper) ToUsers(accounts Accounts) sqlite.UsersBlob {
	users := make(sqlite.UsersBlob, len(accounts))
	for email, account := range accounts {
		users[NormalizeEmail(email)] = m.ToDatabase(account)
	}
	return users
}

// FromUsers converts a users blob to the account map.
func (m *AccountMapper) FromUsers(users sqlite.UsersBlob) Accounts {
	accounts := make(Accounts, len(users))
	for email, record := range users {
		accounts.Put(m.FromDatabase(email, record))
	}
	return accounts
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task    *TaskMapper
	Account *AccountMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	tasks := NewTaskMapper()
	return &Mapper{
		Task:    tasks,
		Account: NewAccountMapper(tasks),
	}
}
