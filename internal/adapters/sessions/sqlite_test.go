package sessions_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msull/emilytarot/internal/adapters/sessions"
	"github.com/msull/emilytarot/internal/domain"
)

func newSQLiteStore(t *testing.T) *sessions.SQLiteStore {
	t.Helper()
	store, err := sessions.NewSQLite(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	original := sampleState("2024010100abcdef")
	require.NoError(t, store.Save(ctx, original))

	loaded, err := store.Load(ctx, "2024010100abcdef")
	require.NoError(t, err)

	assert.Equal(t, original.SessionID, loaded.SessionID)
	assert.Equal(t, original.Transcript, loaded.Transcript)
	assert.Equal(t, original.TokensUsed, loaded.TokensUsed)
}

func TestSQLiteStore_MissingSession(t *testing.T) {
	store := newSQLiteStore(t)

	_, err := store.Load(context.Background(), "2024010100zzzzzz")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSQLiteStore_Upsert(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	state := sampleState("2024010100abcdef")
	require.NoError(t, store.Save(ctx, state))

	state.AppendUser("One more thing.")
	require.NoError(t, store.Save(ctx, state))

	loaded, err := store.Load(ctx, "2024010100abcdef")
	require.NoError(t, err)
	assert.Len(t, loaded.Transcript, len(state.Transcript))
}
