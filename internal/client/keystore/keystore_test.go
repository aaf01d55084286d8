package keystore

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmuwanga/ohns-backoffice/internal/common"
	"github.com/dmuwanga/ohns-backoffice/internal/logging"
)

// Both backings must satisfy the same contract; run the shared suite
// against each.
func openStores(t *testing.T) map[string]Store {
	t.Helper()

	sqliteStore, err := OpenSQLite(context.Background(), t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteStore.Close() })

	fileStore, err := OpenFile(t.TempDir())
	require.NoError(t, err)

	return map[string]Store{"sqlite": sqliteStore, "file": fileStore}
}

func TestStore_SetGetRoundTrip(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, s.Set(ctx, common.SessionIDKey, "s1"))

			var got string
			found, err := s.Get(ctx, common.SessionIDKey, &got)
			require.NoError(t, err)
			require.True(t, found)
			require.Equal(t, "s1", got)
		})
	}
}

func TestStore_GetMissingKey(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			var got string
			found, err := s.Get(context.Background(), "nope", &got)
			require.NoError(t, err)
			require.False(t, found)
		})
	}
}

func TestStore_DeleteRemovesValue(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, s.Set(ctx, common.SessionIDKey, "s1"))
			require.NoError(t, s.Delete(ctx, common.SessionIDKey))

			var got string
			found, err := s.Get(ctx, common.SessionIDKey, &got)
			require.NoError(t, err)
			require.False(t, found)

			// deleting again is fine
			require.NoError(t, s.Delete(ctx, common.SessionIDKey))
		})
	}
}

func TestStore_OverwriteReplacesValue(t *testing.T) {
	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, s.Set(ctx, common.SessionIDKey, "old"))
			require.NoError(t, s.Set(ctx, common.SessionIDKey, "new"))

			var got string
			found, err := s.Get(ctx, common.SessionIDKey, &got)
			require.NoError(t, err)
			require.True(t, found)
			require.Equal(t, "new", got)
		})
	}
}

func TestStore_StructuredValues(t *testing.T) {
	type profile struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	for name, s := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, s.Set(ctx, "profile", profile{ID: "u1", Name: "Asha"}))

			var got profile
			found, err := s.Get(ctx, "profile", &got)
			require.NoError(t, err)
			require.True(t, found)
			require.Equal(t, profile{ID: "u1", Name: "Asha"}, got)
		})
	}
}

func TestSQLiteStore_ValuesSealedOnDisk(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := OpenSQLite(ctx, dir)
	require.NoError(t, err)
	defer s.Close()

	token := "very-secret-session-token"
	require.NoError(t, s.Set(ctx, common.SessionIDKey, token))

	raw, err := os.ReadFile(filepath.Join(dir, sqliteFileName))
	require.NoError(t, err)
	require.NotContains(t, string(raw), token)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := OpenSQLite(ctx, dir)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, common.SessionIDKey, "s1"))
	require.NoError(t, s.Close())

	// same device secret, so the value must unseal after reopening
	s, err = OpenSQLite(ctx, dir)
	require.NoError(t, err)
	defer s.Close()

	var got string
	found, err := s.Get(ctx, common.SessionIDKey, &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "s1", got)
}

func TestOpen_BackendSelection(t *testing.T) {
	log := logging.NewSlogLogger(slog.New(slog.DiscardHandler))
	ctx := context.Background()

	s, err := Open(ctx, BackendSQLite, t.TempDir(), log)
	require.NoError(t, err)
	require.IsType(t, &SQLiteStore{}, s)
	_ = s.Close()

	s, err = Open(ctx, BackendFile, t.TempDir(), log)
	require.NoError(t, err)
	require.IsType(t, &FileStore{}, s)

	s, err = Open(ctx, BackendAuto, t.TempDir(), log)
	require.NoError(t, err)
	require.IsType(t, &SQLiteStore{}, s)
	_ = s.Close()

	_, err = Open(ctx, "keychain", t.TempDir(), log)
	require.Error(t, err)
}
