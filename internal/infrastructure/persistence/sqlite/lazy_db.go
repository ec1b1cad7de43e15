package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/logging"
)

// LazyDB opens the database on first access. Most CLI commands only read
// synced preferences and never pay for the WASM compile and migrations.
type LazyDB struct {
	dbPath string
	db     *sql.DB
	err    error
	once   sync.Once
	mu     sync.RWMutex
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB returns a provider for dbPath without opening it.
func NewLazyDB(dbPath string) *LazyDB {
	return &LazyDB{dbPath: dbPath}
}

// DB returns the connection, opening it once.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.once.Do(func() {
		log := logging.FromContext(ctx)
		log.Debug().Str("path", l.dbPath).Msg("opening local store")

		db, err := NewConnection(ctx, l.dbPath)
		l.mu.Lock()
		l.db, l.err = db, err
		l.mu.Unlock()
		if err != nil {
			log.Error().Err(err).Msg("local store open failed")
		}
	})

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.err != nil {
		return nil, fmt.Errorf("database initialization failed: %w", l.err)
	}
	return l.db, nil
}

func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

func (l *LazyDB) IsInitialized() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.dbPath
}

type lazyKVStore struct {
	provider port.DatabaseProvider
	once     sync.Once
	store    port.ConfigStore
	initErr  error
}

// NewLazyKVStore returns a ConfigStore that opens provider on first call.
func NewLazyKVStore(provider port.DatabaseProvider) port.ConfigStore {
	return &lazyKVStore{provider: provider}
}

func (s *lazyKVStore) init(ctx context.Context) error {
	s.once.Do(func() {
		db, err := s.provider.DB(ctx)
		if err != nil {
			s.initErr = err
			return
		}
		s.store = NewKVStore(db)
	})
	return s.initErr
}

func (s *lazyKVStore) Get(ctx context.Context, scope port.Scope, keys ...string) (map[string]json.RawMessage, error) {
	if err := s.init(ctx); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, scope, keys...)
}

func (s *lazyKVStore) Set(ctx context.Context, scope port.Scope, values map[string]any) error {
	if err := s.init(ctx); err != nil {
		return err
	}
	return s.store.Set(ctx, scope, values)
}

func (s *lazyKVStore) Remove(ctx context.Context, scope port.Scope, keys ...string) error {
	if err := s.init(ctx); err != nil {
		return err
	}
	return s.store.Remove(ctx, scope, keys...)
}

func (s *lazyKVStore) List(ctx context.Context, scope port.Scope, prefix string) (map[string]json.RawMessage, error) {
	if err := s.init(ctx); err != nil {
		return nil, err
	}
	return s.store.List(ctx, scope, prefix)
}
