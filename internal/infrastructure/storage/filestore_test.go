package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/infrastructure/storage"
	"github.com/bnema/includs/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	store, err := storage.NewFileStore(filepath.Join(t.TempDir(), "sync", "prefs.json"))
	require.NoError(t, err)

	got, err := store.Get(testCtx(), port.ScopeSynced)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	ctx := testCtx()
	path := filepath.Join(t.TempDir(), "prefs.json")

	first, err := storage.NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, port.ScopeSynced, map[string]any{"fontScale": 1.3, "ttsSpeed": "slow"}))
	require.NoError(t, first.Remove(ctx, port.ScopeSynced, "ttsSpeed"))

	second, err := storage.NewFileStore(path)
	require.NoError(t, err)
	got, err := second.Get(ctx, port.ScopeSynced)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.JSONEq(t, `1.3`, string(got["fontScale"]))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestFileStore_UnreadableFileFailsReadsNotConstruction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := storage.NewFileStore(path)
	require.NoError(t, err)
	require.Error(t, store.LoadError())

	_, err = store.Get(testCtx(), port.ScopeSynced, "fontScale")
	assert.Error(t, err)
	_, err = store.List(testCtx(), port.ScopeLocal, "site_")
	assert.Error(t, err)
}

func TestFileStore_FirstWriteMovesUnreadableFileAside(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := storage.NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Set(testCtx(), port.ScopeSynced, map[string]any{"fontScale": 1.2}))
	assert.NoError(t, store.LoadError())

	kept, err := os.ReadFile(path + storage.UnreadableSuffix)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(kept))

	got, err := store.Get(testCtx(), port.ScopeSynced, "fontScale")
	require.NoError(t, err)
	assert.JSONEq(t, "1.2", string(got["fontScale"]))

	reopened, err := storage.NewFileStore(path)
	require.NoError(t, err)
	assert.NoError(t, reopened.LoadError())
}

func TestFileStore_List(t *testing.T) {
	ctx := testCtx()
	store, err := storage.NewFileStore(filepath.Join(t.TempDir(), "prefs.json"))
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, port.ScopeLocal, map[string]any{
		"site_https://a.example": map[string]float64{"fontScale": 1.2},
		"openaiModel":            "gpt-4o-mini",
	}))

	got, err := store.List(ctx, port.ScopeLocal, "site_")
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Contains(t, got, "site_https://a.example")
}

func TestFileStore_WatchReportsExternalChanges(t *testing.T) {
	ctx, cancel := context.WithCancel(testCtx())
	defer cancel()

	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.json")
	store, err := storage.NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, port.ScopeSynced, map[string]any{"fontScale": 1.0}))

	changes := make(chan []storage.Change, 4)
	done := make(chan error, 1)
	go func() { done <- store.Watch(ctx, func(c []storage.Change) { changes <- c }) }()

	// Another device writes through its own copy of the file.
	other, err := storage.NewFileStore(path)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		_ = other.Set(ctx, port.ScopeSynced, map[string]any{"fontScale": 1.4})
		select {
		case c := <-changes:
			return len(c) == 1 && c[0].Scope == port.ScopeSynced &&
				len(c[0].Keys) == 1 && c[0].Keys[0] == "fontScale"
		default:
			return false
		}
	}, 5*time.Second, 50*time.Millisecond)

	got, err := store.Get(ctx, port.ScopeSynced, "fontScale")
	require.NoError(t, err)
	assert.JSONEq(t, `1.4`, string(got["fontScale"]))

	cancel()
	require.NoError(t, <-done)
}
