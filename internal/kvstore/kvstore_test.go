package kvstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestStore creates a new in-memory store for testing
func NewTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(":memory:")
	require.NoError(t, err, "failed to create test store")

	t.Cleanup(func() {
		store.Close()
	})

	return store
}

func TestGetMissing(t *testing.T) {
	store := NewTestStore(t)

	_, err := store.Get("auth_token")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSetGet(t *testing.T) {
	store := NewTestStore(t)

	require.NoError(t, store.Set("auth_token", "jwt-123"))

	value, err := store.Get("auth_token")
	require.NoError(t, err)
	require.Equal(t, "jwt-123", value)
}

func TestSetOverwrites(t *testing.T) {
	store := NewTestStore(t)

	require.NoError(t, store.Set("auth_token", "old"))
	require.NoError(t, store.Set("auth_token", "new"))

	value, err := store.Get("auth_token")
	require.NoError(t, err)
	require.Equal(t, "new", value)
}

func TestDelete(t *testing.T) {
	store := NewTestStore(t)

	require.NoError(t, store.Set("auth_token", "jwt-123"))
	require.NoError(t, store.Delete("auth_token"))

	_, err := store.Get("auth_token")
	require.ErrorIs(t, err, ErrNotFound)

	// deleting again is a no-op
	require.NoError(t, store.Delete("auth_token"))
}
