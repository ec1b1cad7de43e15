package sqlite_test

import (
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyDB_NotInitializedByDefault(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "includs.db"))

	assert.False(t, lazy.IsInitialized())
	assert.NoError(t, lazy.Close())
}

func TestLazyDB_ConcurrentAccessSharesConnection(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "includs.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	const goroutines = 8
	var wg sync.WaitGroup
	dbs := make([]*sql.DB, goroutines)
	errs := make([]error, goroutines)

	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dbs[i], errs[i] = lazy.DB(ctx)
		}()
	}
	wg.Wait()

	for i := range goroutines {
		require.NoError(t, errs[i])
		assert.Same(t, dbs[0], dbs[i])
	}
	assert.True(t, lazy.IsInitialized())
}

func TestLazyKVStore_OpensOnFirstCall(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "includs.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	store := sqlite.NewLazyKVStore(lazy)
	assert.False(t, lazy.IsInitialized())

	require.NoError(t, store.Set(ctx, port.ScopeLocal, map[string]any{"openaiModel": "gpt-4o-mini"}))
	assert.True(t, lazy.IsInitialized())

	got, err := store.Get(ctx, port.ScopeLocal, "openaiModel")
	require.NoError(t, err)
	assert.JSONEq(t, `"gpt-4o-mini"`, string(got["openaiModel"]))
}

func TestLazyKVStore_PropagatesOpenError(t *testing.T) {
	ctx := testCtx()
	store := sqlite.NewLazyKVStore(sqlite.NewLazyDB(""))

	_, err := store.Get(ctx, port.ScopeLocal)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database path cannot be empty")
}
