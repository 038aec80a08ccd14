package domain

import (
	"strings"
	"time"
)

// DueDateLayout is the only accepted due date format.
const DueDateLayout = "2006-01-02"

// Priority is a task's urgency. Values outside the known set are kept as-is
// so that hand-edited data still loads; they rank below low.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is applied when a task is added without one.
const DefaultPriority = PriorityMedium

// Priorities lists the known priorities from lowest to highest.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// Rank orders priorities for sorting: high 3, medium 2, low 1, anything else 0.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	return p.Rank() > 0
}

// String returns the priority name.
func (p Priority) String() string {
	return string(p)
}

// Task represents a single to-do item owned by an account.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID          string
	Title       string
	Description string
	DueDate     string
	Priority    Priority
	Completed   bool
	CreatedAt   time.Time
}

// HasDueDate reports whether the task carries a due date string.
func (t Task) HasDueDate() bool {
	return strings.TrimSpace(t.DueDate) != ""
}

// Due parses the due date. ok is false when there is none or it does not parse.
func (t Task) Due() (time.Time, bool) {
	if !t.HasDueDate() {
		return time.Time{}, false
	}
	due, err := time.Parse(DueDateLayout, strings.TrimSpace(t.DueDate))
	if err != nil {
		return time.Time{}, false
	}
	return due, true
}

// Matches reports whether the lowercased query occurs in the title or description.
func (t Task) Matches(query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), query) ||
		strings.Contains(strings.ToLower(t.Description), query)
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.ID != "" && strings.TrimSpace(t.Title) != ""
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}
