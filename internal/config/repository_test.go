package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRepository(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("TM_DATA_DIR", tmpDir)
	t.Setenv("TM_SESSION_KEY", "custom_logged")

	cfg, err := NewEnvironmentLoader().Load()
	require.NoError(t, err)

	repo, err := CreateRepository(cfg)
	require.NoError(t, err)
	require.NotNil(t, repo)
	defer repo.Close()

	assert.FileExists(t, filepath.Join(tmpDir, "tm.db"))

	ctx := context.Background()
	require.NoError(t, repo.SetSession(ctx, "a@b.co"))

	value, found, err := repo.GetItem(ctx, "custom_logged")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "a@b.co", value)
}

func TestCreateTestRepository(t *testing.T) {
	repo, err := CreateTestRepository()
	require.NoError(t, err)
	defer repo.Close()

	users, err := repo.LoadUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}
