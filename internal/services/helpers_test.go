package services

import (
	"fmt"
	"testing"
	"time"

	"task-manager/internal/repository/sqlite"

	"github.com/stretchr/testify/require"
)

// setupTestRepository returns a fresh in-memory repository closed at test end
func setupTestRepository(t *testing.T) sqlite.Repository {
	t.Helper()
	repo, err := sqlite.New(sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

// steppingClock advances one second per call so createdAt values are ordered
func steppingClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		now := current
		current = current.Add(time.Second)
		return now
	}
}

// sequentialIDs yields task-1, task-2, ...
func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("task-%d", n)
	}
}

func setupTestContainer(t *testing.T) (*ServiceContainer, sqlite.Repository) {
	t.Helper()
	repo := setupTestRepository(t)
	clock := steppingClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	container := NewServiceContainerWithOptions(repo, nil, NewTimeServiceWithClock(clock, ""), sequentialIDs())
	return container, repo
}
