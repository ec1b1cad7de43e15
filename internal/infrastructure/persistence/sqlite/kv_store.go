package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/logging"
)

type kvStore struct {
	db *sql.DB
}

// NewKVStore returns a ConfigStore backed by the kv_entries table.
// Every scope lives in the same table.
func NewKVStore(db *sql.DB) port.ConfigStore {
	return &kvStore{db: db}
}

func (s *kvStore) Get(ctx context.Context, scope port.Scope, keys ...string) (map[string]json.RawMessage, error) {
	query := "SELECT key, value FROM kv_entries WHERE scope = ?"
	args := []any{string(scope)}
	if len(keys) > 0 {
		query += " AND key IN (" + placeholders(len(keys)) + ")"
		for _, k := range keys {
			args = append(args, k)
		}
	}

	entries, err := s.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s entries: %w", scope, err)
	}
	return entries, nil
}

func (s *kvStore) Set(ctx context.Context, scope port.Scope, values map[string]any) error {
	log := logging.FromContext(ctx)
	if len(values) == 0 {
		return nil
	}

	encoded := make(map[string]string, len(values))
	for k, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode %q: %w", k, err)
		}
		encoded[k] = string(raw)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO kv_entries (scope, key, value, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(scope, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	now := time.Now().Unix()
	for k, v := range encoded {
		if _, err := stmt.ExecContext(ctx, string(scope), k, v, now); err != nil {
			return fmt.Errorf("failed to write %q: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s entries: %w", scope, err)
	}

	log.Debug().Str("scope", string(scope)).Int("keys", len(encoded)).Msg("entries written")
	return nil
}

func (s *kvStore) Remove(ctx context.Context, scope port.Scope, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	args := []any{string(scope)}
	for _, k := range keys {
		args = append(args, k)
	}

	_, err := s.db.ExecContext(ctx,
		"DELETE FROM kv_entries WHERE scope = ? AND key IN ("+placeholders(len(keys))+")", args...)
	if err != nil {
		return fmt.Errorf("failed to remove %s entries: %w", scope, err)
	}

	logging.FromContext(ctx).Debug().Str("scope", string(scope)).Strs("keys", keys).Msg("entries removed")
	return nil
}

func (s *kvStore) List(ctx context.Context, scope port.Scope, prefix string) (map[string]json.RawMessage, error) {
	entries, err := s.query(ctx,
		`SELECT key, value FROM kv_entries WHERE scope = ? AND key LIKE ? ESCAPE '\'`,
		string(scope), escapeLike(prefix)+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to list %s entries: %w", scope, err)
	}
	return entries, nil
}

func (s *kvStore) query(ctx context.Context, query string, args ...any) (map[string]json.RawMessage, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string]json.RawMessage)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		out[key] = json.RawMessage(value)
	}
	return out, rows.Err()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
