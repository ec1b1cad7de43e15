package port

import (
	"context"
	"encoding/json"
)

// Scope selects one of the two key-value stores.
type Scope string

const (
	// ScopeSynced holds account-wide preferences.
	ScopeSynced Scope = "synced"
	// ScopeLocal holds device-only data: API keys and per-site overrides.
	ScopeLocal Scope = "local"
)

// ConfigStore is a key to JSON-value store with two scopes. Each call is
// atomic on its own; there are no multi-call transactions.
type ConfigStore interface {
	// Get returns the stored values for keys. Missing keys are absent from
	// the map. With no keys, every entry in the scope is returned.
	Get(ctx context.Context, scope Scope, keys ...string) (map[string]json.RawMessage, error)

	// Set writes each value (JSON-encoded) under its key.
	Set(ctx context.Context, scope Scope, values map[string]any) error

	// Remove deletes keys. Missing keys are ignored.
	Remove(ctx context.Context, scope Scope, keys ...string) error

	// List returns every entry whose key starts with prefix.
	List(ctx context.Context, scope Scope, prefix string) (map[string]json.RawMessage, error)
}
