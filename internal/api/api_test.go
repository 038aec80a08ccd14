package api

import (
	"context"
	"testing"

	"task-manager/internal/repository/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestAPI(t *testing.T) (API, sqlite.Repository) {
	t.Helper()
	repo, err := sqlite.New(sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return New(repo), repo
}

func TestAPI_StorageItems(t *testing.T) {
	api, repo := setupTestAPI(t)
	ctx := context.Background()

	items, err := api.StorageItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, repo.SetSession(ctx, "foo@bar.com"))
	require.NoError(t, repo.SaveUsers(ctx, sqlite.UsersBlob{
		"foo@bar.com": {Name: "Foo", Password: "secret1"},
	}))

	items, err = api.StorageItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "tm_logged", items[0].Key)
	assert.Equal(t, len("foo@bar.com"), items[0].Size)
	assert.Equal(t, "tm_users", items[1].Key)
	assert.False(t, items[1].UpdatedAt.IsZero())
}

func TestAPI_Accounts(t *testing.T) {
	api, repo := setupTestAPI(t)
	ctx := context.Background()

	require.NoError(t, repo.SetItem(ctx, "tm_users", `{
		" Zed@Example.com ": {"name": "Zed", "password": "pw", "tasks": [
			{"id": "1", "title": "a", "completed": true},
			{"id": "2", "title": "b"}
		]},
		"amy@example.com": {"name": "Amy", "password": "pw"}
	}`))

	accounts, err := api.Accounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	assert.Equal(t, AccountSummary{Email: "amy@example.com", Name: "Amy"}, accounts[0])
	assert.Equal(t, AccountSummary{Email: "zed@example.com", Name: "Zed", Tasks: 2, Completed: 1}, accounts[1])
}

func TestAPI_LoggedIn(t *testing.T) {
	api, repo := setupTestAPI(t)
	ctx := context.Background()

	marker, err := api.LoggedIn(ctx)
	require.NoError(t, err)
	assert.Empty(t, marker)

	require.NoError(t, repo.SetSession(ctx, "foo@bar.com"))
	marker, err = api.LoggedIn(ctx)
	require.NoError(t, err)
	assert.Equal(t, "foo@bar.com", marker)
}
