package domain

import (
	"testing"
	"time"

	"task-manager/internal/repository/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskMapper_ToDatabase(t *testing.T) {
	mapper := NewTaskMapper()
	task := Task{
		ID:          "t1",
		Title:       "Write report",
		Description: "Q3 numbers",
		DueDate:     "2025-09-30",
		Priority:    PriorityHigh,
		Completed:   true,
		CreatedAt:   time.Date(2025, 9, 1, 9, 30, 0, 0, time.UTC),
	}

	result := mapper.ToDatabase(task)

	expected := sqlite.TaskRecord{
		ID:          "t1",
		Title:       "Write report",
		Description: "Q3 numbers",
		DueDate:     "2025-09-30",
		Priority:    "high",
		Completed:   true,
		CreatedAt:   "2025-09-01T09:30:00.000Z",
	}
	assert.Equal(t, expected, result)
}

func TestTaskMapper_FromDatabase(t *testing.T) {
	mapper := NewTaskMapper()

	result := mapper.FromDatabase(sqlite.TaskRecord{
		ID:        "t1",
		Title:     "Write report",
		Priority:  "someday",
		CreatedAt: "2025-09-01T09:30:00.000Z",
	})

	assert.Equal(t, "t1", result.ID)
	assert.Equal(t, Priority("someday"), result.Priority)
	assert.True(t, time.Date(2025, 9, 1, 9, 30, 0, 0, time.UTC).Equal(result.CreatedAt))
}

func TestTaskMapper_FromDatabase_BadCreatedAt(t *testing.T) {
	mapper := NewTaskMapper()

	result := mapper.FromDatabase(sqlite.TaskRecord{ID: "t1", CreatedAt: "last tuesday"})
	assert.True(t, result.CreatedAt.IsZero())

	record := mapper.ToDatabase(result)
	assert.Empty(t, record.CreatedAt)
}

func TestTaskMapper_Slices(t *testing.T) {
	mapper := NewTaskMapper()

	assert.NotNil(t, mapper.ToDatabaseSlice(nil))
	assert.NotNil(t, mapper.FromDatabaseSlice(nil))

	tasks := []Task{{ID: "1", Title: "a"}, {ID: "2", Title: "b"}}
	roundTrip := mapper.FromDatabaseSlice(mapper.ToDatabaseSlice(tasks))
	require.Len(t, roundTrip, 2)
	assert.Equal(t, "1", roundTrip[0].ID)
	assert.Equal(t, "2", roundTrip[1].ID)
}

func TestAccountMapper_Users(t *testing.T) {
	mapper := NewMapper()

	users := sqlite.UsersBlob{
		"a@b.co": {Name: "Ann", Password: "secret1", Tasks: []sqlite.TaskRecord{{ID: "t1", Title: "Buy milk", Priority: "low"}}},
		"c@d.co": {Name: "Cid", Password: "secret2"},
	}

	accounts := mapper.Account.FromUsers(users)
	require.Len(t, accounts, 2)

	ann, ok := accounts.Get("a@b.co")
	require.True(t, ok)
	assert.Equal(t, "a@b.co", ann.Email)
	assert.Equal(t, "Ann", ann.Name)
	require.Len(t, ann.Tasks, 1)
	assert.Equal(t, PriorityLow, ann.Tasks[0].Priority)

	cid, ok := accounts.Get("c@d.co")
	require.True(t, ok)
	assert.NotNil(t, cid.Tasks)

	back := mapper.Account.ToUsers(accounts)
	assert.Equal(t, "secret1", back["a@b.co"].Password)
	assert.Equal(t, "Buy milk", back["a@b.co"].Tasks[0].Title)
	assert.NotNil(t, back["c@d.co"].Tasks)
}
