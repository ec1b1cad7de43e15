package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/includs/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.NewConnection(testCtx(), filepath.Join(t.TempDir(), "includs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestKVStore_SetGet(t *testing.T) {
	ctx := testCtx()
	store := sqlite.NewKVStore(openTestDB(t))

	require.NoError(t, store.Set(ctx, port.ScopeSynced, map[string]any{
		"fontScale":  1.2,
		"ttsSpeed":   "fast",
		"helpTips":   false,
		"site_https": map[string]any{"lineHeight": 1.8},
	}))

	got, err := store.Get(ctx, port.ScopeSynced, "fontScale", "ttsSpeed", "missing")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.JSONEq(t, `1.2`, string(got["fontScale"]))
	assert.JSONEq(t, `"fast"`, string(got["ttsSpeed"]))

	all, err := store.Get(ctx, port.ScopeSynced)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.JSONEq(t, `{"lineHeight":1.8}`, string(all["site_https"]))
}

func TestKVStore_ScopesAreIsolated(t *testing.T) {
	ctx := testCtx()
	store := sqlite.NewKVStore(openTestDB(t))

	require.NoError(t, store.Set(ctx, port.ScopeSynced, map[string]any{"fontScale": 1.1}))
	require.NoError(t, store.Set(ctx, port.ScopeLocal, map[string]any{"fontScale": 1.9}))

	synced, err := store.Get(ctx, port.ScopeSynced, "fontScale")
	require.NoError(t, err)
	local, err := store.Get(ctx, port.ScopeLocal, "fontScale")
	require.NoError(t, err)

	assert.JSONEq(t, `1.1`, string(synced["fontScale"]))
	assert.JSONEq(t, `1.9`, string(local["fontScale"]))
}

func TestKVStore_SetOverwrites(t *testing.T) {
	ctx := testCtx()
	store := sqlite.NewKVStore(openTestDB(t))

	require.NoError(t, store.Set(ctx, port.ScopeLocal, map[string]any{"openaiModel": "a"}))
	require.NoError(t, store.Set(ctx, port.ScopeLocal, map[string]any{"openaiModel": "b"}))

	got, err := store.Get(ctx, port.ScopeLocal, "openaiModel")
	require.NoError(t, err)
	assert.JSONEq(t, `"b"`, string(got["openaiModel"]))
}

func TestKVStore_Remove(t *testing.T) {
	ctx := testCtx()
	store := sqlite.NewKVStore(openTestDB(t))

	require.NoError(t, store.Set(ctx, port.ScopeLocal, map[string]any{"a": 1, "b": 2}))
	require.NoError(t, store.Remove(ctx, port.ScopeLocal, "a", "never-set"))
	require.NoError(t, store.Remove(ctx, port.ScopeLocal))

	got, err := store.Get(ctx, port.ScopeLocal)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, keysOf(got))
}

func TestKVStore_ListEscapesPrefix(t *testing.T) {
	ctx := testCtx()
	store := sqlite.NewKVStore(openTestDB(t))

	require.NoError(t, store.Set(ctx, port.ScopeLocal, map[string]any{
		"site_https://a.example": map[string]any{"fontScale": 1.2},
		"site_https://b.example": map[string]any{"lineHeight": 2.0},
		"siteXother":             true,
		"openaiApiKey":           "sk-test",
	}))

	got, err := store.List(ctx, port.ScopeLocal, "site_")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"site_https://a.example", "site_https://b.example"}, keysOf(got))
}

func TestNewConnection_EmptyPath(t *testing.T) {
	_, err := sqlite.NewConnection(testCtx(), "")
	require.Error(t, err)
}

func TestSchemaVersion(t *testing.T) {
	ctx := testCtx()
	db := openTestDB(t)

	v, err := sqlite.SchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
}

func keysOf[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
