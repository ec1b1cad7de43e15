package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/includs/internal/application/port"
)

// Router sends each scope to its own backend.
type Router struct {
	routes map[port.Scope]port.ConfigStore
}

var _ port.ConfigStore = (*Router)(nil)

// NewRouter maps synced and local to their stores. Either may be the same
// store.
func NewRouter(synced, local port.ConfigStore) *Router {
	return &Router{routes: map[port.Scope]port.ConfigStore{
		port.ScopeSynced: synced,
		port.ScopeLocal:  local,
	}}
}

func (r *Router) route(scope port.Scope) (port.ConfigStore, error) {
	s, ok := r.routes[scope]
	if !ok || s == nil {
		return nil, fmt.Errorf("no store for scope %q", scope)
	}
	return s, nil
}

func (r *Router) Get(ctx context.Context, scope port.Scope, keys ...string) (map[string]json.RawMessage, error) {
	s, err := r.route(scope)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, scope, keys...)
}

func (r *Router) Set(ctx context.Context, scope port.Scope, values map[string]any) error {
	s, err := r.route(scope)
	if err != nil {
		return err
	}
	return s.Set(ctx, scope, values)
}

func (r *Router) Remove(ctx context.Context, scope port.Scope, keys ...string) error {
	s, err := r.route(scope)
	if err != nil {
		return err
	}
	return s.Remove(ctx, scope, keys...)
}

func (r *Router) List(ctx context.Context, scope port.Scope, prefix string) (map[string]json.RawMessage, error) {
	s, err := r.route(scope)
	if err != nil {
		return nil, err
	}
	return s.List(ctx, scope, prefix)
}
