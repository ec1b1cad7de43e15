package usecase_test

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// memStore is an in-memory port.ConfigStore for round-trip tests.
type memStore struct {
	mu   sync.Mutex
	data map[port.Scope]map[string]json.RawMessage
	sets int
}

func newMemStore() *memStore {
	return &memStore{data: map[port.Scope]map[string]json.RawMessage{
		port.ScopeSynced: {},
		port.ScopeLocal:  {},
	}}
}

func (s *memStore) Get(_ context.Context, scope port.Scope, keys ...string) (map[string]json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := map[string]json.RawMessage{}
	if len(keys) == 0 {
		for k, v := range s.data[scope] {
			out[k] = v
		}
		return out, nil
	}
	for _, k := range keys {
		if v, ok := s.data[scope][k]; ok {
			out[k] = v
		}
	}
	return out, nil
}

func (s *memStore) Set(_ context.Context, scope port.Scope, values map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sets++
	for k, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		s.data[scope][k] = data
	}
	return nil
}

func (s *memStore) Remove(_ context.Context, scope port.Scope, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range keys {
		delete(s.data[scope], k)
	}
	return nil
}

func (s *memStore) List(_ context.Context, scope port.Scope, prefix string) (map[string]json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := map[string]json.RawMessage{}
	for k, v := range s.data[scope] {
		if strings.HasPrefix(k, prefix) {
			out[k] = v
		}
	}
	return out, nil
}

func (s *memStore) put(scope port.Scope, key, rawJSON string) {
	s.data[scope][key] = json.RawMessage(rawJSON)
}

func (s *memStore) raw(scope port.Scope, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[scope][key]
	return string(v), ok
}
