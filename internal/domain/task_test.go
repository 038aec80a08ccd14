package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPriority_Rank(t *testing.T) {
	tests := []struct {
		priority Priority
		rank     int
		valid    bool
	}{
		{PriorityHigh, 3, true},
		{PriorityMedium, 2, true},
		{PriorityLow, 1, true},
		{Priority("urgent"), 0, false},
		{Priority(""), 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			assert.Equal(t, tt.rank, tt.priority.Rank())
			assert.Equal(t, tt.valid, tt.priority.IsValid())
		})
	}
}

func TestPriorities(t *testing.T) {
	assert.Equal(t, []Priority{PriorityLow, PriorityMedium, PriorityHigh}, Priorities())
	assert.Equal(t, PriorityMedium, DefaultPriority)
}

func TestTask_Due(t *testing.T) {
	tests := []struct {
		name    string
		dueDate string
		wantOK  bool
		want    time.Time
	}{
		{name: "no due date", dueDate: "", wantOK: false},
		{name: "whitespace only", dueDate: "   ", wantOK: false},
		{name: "valid date", dueDate: "2025-03-14", wantOK: true, want: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)},
		{name: "unparseable date", dueDate: "next week", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{DueDate: tt.dueDate}
			due, ok := task.Due()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(due))
			}
		})
	}

	assert.True(t, Task{DueDate: "junk"}.HasDueDate())
	assert.False(t, Task{}.HasDueDate())
}

func TestTask_Matches(t *testing.T) {
	task := Task{Title: "Buy Milk", Description: "From the Corner shop"}

	tests := []struct {
		query    string
		expected bool
	}{
		{"", true},
		{"milk", true},
		{"corner", true},
		{"bread", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.expected, task.Matches(tt.query))
		})
	}
}

func TestTask_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{"valid task", Task{ID: "1", Title: "Write report"}, true},
		{"missing id", Task{Title: "Write report"}, false},
		{"blank title", Task{ID: "1", Title: "   "}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.IsValid())
		})
	}
}

func TestTask_String(t *testing.T) {
	assert.Equal(t, "Write report", Task{Title: "Write report"}.String())
	assert.Equal(t, "high", PriorityHigh.String())
}
