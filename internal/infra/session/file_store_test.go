package session

import (
	"context"
	"os"
	"testing"

	"portal/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	path := newTestFileStorePath(t)
	store := NewFileStore(path)

	require.NoError(t, store.SaveSession(ctx, newTestSession()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := store.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-token", loaded.Token)
	assert.Equal(t, "refresh-token", loaded.RefreshToken)
	require.NotNil(t, loaded.User)
	assert.Equal(t, int64(42), loaded.User.ID)

	require.NoError(t, store.ClearSession(ctx))

	_, err = store.LoadSession(ctx)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	// Clearing twice is harmless.
	assert.NoError(t, store.ClearSession(ctx))
}

func TestFileStore_LoadMissing(t *testing.T) {
	store := NewFileStore(newTestFileStorePath(t))

	_, err := store.LoadSession(context.Background())
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}
