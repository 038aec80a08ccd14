package services

import (
	"time"

	"task-manager/internal/domain"
)

const defaultDateFormat = "2006-01-02"

// timeServiceImpl implements the TimeService interface
type timeServiceImpl struct {
	now        func() time.Time
	dateFormat string
	location   *time.Location
}

// NewTimeService creates a TimeService backed by the system clock
func NewTimeService(dateFormat string) TimeService {
	return NewTimeServiceWithClock(time.Now, dateFormat)
}

// NewTimeServiceWithClock creates a TimeService with an injected clock, for tests
func NewTimeServiceWithClock(now func() time.Time, dateFormat string) TimeService {
	if dateFormat == "" {
		dateFormat = defaultDateFormat
	}
	return &timeServiceImpl{
		now:        now,
		dateFormat: dateFormat,
		location:   time.Local,
	}
}

// Now returns the current time in UTC at millisecond precision, matching what
// is stored for createdAt.
func (t *timeServiceImpl) Now() time.Time {
	return t.now().UTC().Truncate(time.Millisecond)
}

// FormatDate renders a timestamp as a local calendar date
func (t *timeServiceImpl) FormatDate(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.In(t.location).Format(t.dateFormat)
}

// FormatDue renders a task's due date in the display format. Due dates are
// calendar dates, so no zone conversion happens. Unparseable values are
// returned as stored.
func (t *timeServiceImpl) FormatDue(task domain.Task) string {
	due, ok := task.Due()
	if !ok {
		return task.DueDate
	}
	return due.Format(t.dateFormat)
}

// IsOverdue reports whether a pending task's due date is before today
func (t *timeServiceImpl) IsOverdue(task domain.Task) bool {
	if task.Completed {
		return false
	}
	due, ok := task.Due()
	if !ok {
		return false
	}
	now := t.now().In(t.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return due.Before(today)
}
