package domain

import (
	"sort"
	"strings"
)

// NormalizeEmail trims and lowercases an email so it can be used as an account key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Account is a registered user's credentials plus their owned task list.
// Password is kept and compared in plaintext; this is a local tool and the
// account model is not a reference for secure credential storage.
type Account struct {
	Email    string
	Name     string
	Password string
	Tasks    []Task
}

// NewAccount creates an account with an empty task list.
func NewAccount(email, name, password string) *Account {
	return &Account{
		Email:    NormalizeEmail(email),
		Name:     name,
		Password: password,
		Tasks:    []Task{},
	}
}

// PasswordMatches compares passwords exactly, case-sensitive.
func (a *Account) PasswordMatches(password string) bool {
	return a.Password == password
}

// DisplayName falls back to the email when no name was stored.
func (a *Account) DisplayName() string {
	if strings.TrimSpace(a.Name) != "" {
		return a.Name
	}
	return a.Email
}

// TaskIndex returns the position of the task with the given id, or -1.
func (a *Account) TaskIndex(id string) int {
	for i, t := range a.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// PrependTask inserts a task at the head of the list.
func (a *Account) PrependTask(task Task) {
	a.Tasks = append([]Task{task}, a.Tasks...)
}

// RemoveTask deletes the task with the given id. It reports whether anything was removed.
func (a *Account) RemoveTask(id string) bool {
	idx := a.TaskIndex(id)
	if idx < 0 {
		return false
	}
	a.Tasks = append(a.Tasks[:idx:idx], a.Tasks[idx+1:]...)
	return true
}

// Accounts maps normalized email to account. It is the persisted aggregate.
type Accounts map[string]*Account

// Get looks up an account by any casing/whitespace variant of its email.
func (as Accounts) Get(email string) (*Account, bool) {
	acc, ok := as[NormalizeEmail(email)]
	return acc, ok
}

// Exists reports whether an account is registered under the email.
func (as Accounts) Exists(email string) bool {
	_, ok := as.Get(email)
	return ok
}

// Put stores the account under its normalized email.
func (as Accounts) Put(acc *Account) {
	acc.Email = NormalizeEmail(acc.Email)
	as[acc.Email] = acc
}

// Emails returns all keys in sorted order.
func (as Accounts) Emails() []string {
	emails := make([]string, 0, len(as))
	for email := range as {
		emails = append(emails, email)
	}
	sort.Strings(emails)
	return emails
}
