// Package storage holds the file-backed store for the synced scope and the
// routing layer that presents both scopes as one port.ConfigStore.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/logging"
	"github.com/fsnotify/fsnotify"
)

const (
	fileStoreVersion = 1
	fileDirPerm      = 0o700
	filePerm         = 0o600

	// UnreadableSuffix is appended to a store file that failed to load
	// before the first write replaces it.
	UnreadableSuffix = ".corrupt"
)

type fileDocument struct {
	Version int                                       `json:"version"`
	Scopes  map[port.Scope]map[string]json.RawMessage `json:"scopes"`
}

// FileStore keeps entries in a single JSON document. Pointing its path at a
// synced folder is how preferences follow the user across machines.
type FileStore struct {
	path string
	mu   sync.RWMutex
	data map[port.Scope]map[string]json.RawMessage
	// loadErr is set while the file on disk cannot be read. Reads fail
	// with it until a write moves the file aside or a reload succeeds.
	loadErr error
}

var _ port.ConfigStore = (*FileStore)(nil)

// NewFileStore loads path if it exists. A missing file is an empty store.
// A file that cannot be read does not fail construction: see LoadError.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("store path cannot be empty")
	}
	s := &FileStore{path: path, data: make(map[port.Scope]map[string]json.RawMessage)}
	if err := s.load(); err != nil {
		s.loadErr = fmt.Errorf("failed to load store from %s: %w", path, err)
	}
	return s, nil
}

// LoadError returns why the file could not be read, or nil.
func (s *FileStore) LoadError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Path returns the backing file.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) load() error {
	data, err := readDocument(s.path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

func readDocument(path string) (map[port.Scope]map[string]json.RawMessage, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[port.Scope]map[string]json.RawMessage), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return make(map[port.Scope]map[string]json.RawMessage), nil
	}

	var doc fileDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode store file: %w", err)
	}
	if doc.Scopes == nil {
		doc.Scopes = make(map[port.Scope]map[string]json.RawMessage)
	}
	return doc.Scopes, nil
}

// saveLocked writes the document atomically. An unreadable file is renamed
// to path+UnreadableSuffix first so its content is not lost. Caller holds
// s.mu for write.
func (s *FileStore) saveLocked() error {
	if s.loadErr != nil {
		err := os.Rename(s.path, s.path+UnreadableSuffix)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to move unreadable store file aside: %w", err)
		}
		s.loadErr = nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), fileDirPerm); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	encoded, err := json.MarshalIndent(fileDocument{Version: fileStoreVersion, Scopes: s.data}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp store file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(append(encoded, '\n')); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp store file: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to chmod temp store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp store file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp store file: %w", err)
	}
	return nil
}

func (s *FileStore) Get(_ context.Context, scope port.Scope, keys ...string) (map[string]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}

	entries := s.data[scope]
	if len(keys) == 0 {
		return maps.Clone(nonNil(entries)), nil
	}

	out := make(map[string]json.RawMessage, len(keys))
	for _, k := range keys {
		if v, ok := entries[k]; ok {
			out[k] = v
		}
	}
	return out, nil
}

func (s *FileStore) Set(ctx context.Context, scope port.Scope, values map[string]any) error {
	if len(values) == 0 {
		return nil
	}

	encoded := make(map[string]json.RawMessage, len(values))
	for k, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode %q: %w", k, err)
		}
		encoded[k] = raw
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.data[scope]
	next := maps.Clone(nonNil(prev))
	maps.Copy(next, encoded)
	s.data[scope] = next

	if err := s.saveLocked(); err != nil {
		s.data[scope] = prev
		return err
	}

	logging.FromContext(ctx).Debug().
		Str("scope", string(scope)).
		Int("keys", len(encoded)).
		Msg("store file updated")
	return nil
}

func (s *FileStore) Remove(_ context.Context, scope port.Scope, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.data[scope]
	next := maps.Clone(nonNil(prev))
	removed := false
	for _, k := range keys {
		if _, ok := next[k]; ok {
			delete(next, k)
			removed = true
		}
	}
	if !removed {
		return nil
	}

	s.data[scope] = next
	if err := s.saveLocked(); err != nil {
		s.data[scope] = prev
		return err
	}
	return nil
}

func (s *FileStore) List(_ context.Context, scope port.Scope, prefix string) (map[string]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}

	out := make(map[string]json.RawMessage)
	for k, v := range s.data[scope] {
		if strings.HasPrefix(k, prefix) {
			out[k] = v
		}
	}
	return out, nil
}

// Change lists the keys whose values differ after an external rewrite.
type Change struct {
	Scope port.Scope
	Keys  []string
}

// Watch reloads the file when another process replaces it and reports the
// changed keys. It returns when ctx is done.
func (s *FileStore) Watch(ctx context.Context, onChange func([]Change)) error {
	log := logging.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, fileDirPerm); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	// Watch the directory: atomic renames replace the file's inode.
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	name := filepath.Clean(s.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("store watcher error")
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != name || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			changes, err := s.reload()
			if err != nil {
				log.Warn().Err(err).Str("file", ev.Name).Msg("failed to reload store file")
				continue
			}
			if len(changes) > 0 && onChange != nil {
				log.Debug().Int("scopes", len(changes)).Msg("store file changed externally")
				onChange(changes)
			}
		}
	}
}

func (s *FileStore) reload() ([]Change, error) {
	next, err := readDocument(s.path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	prev := s.data
	s.data = next
	s.loadErr = nil
	s.mu.Unlock()

	return diffDocuments(prev, next), nil
}

func diffDocuments(prev, next map[port.Scope]map[string]json.RawMessage) []Change {
	scopes := make(map[port.Scope]struct{})
	for sc := range prev {
		scopes[sc] = struct{}{}
	}
	for sc := range next {
		scopes[sc] = struct{}{}
	}

	var changes []Change
	for sc := range scopes {
		var keys []string
		for k, v := range next[sc] {
			if old, ok := prev[sc][k]; !ok || !jsonEqual(old, v) {
				keys = append(keys, k)
			}
		}
		for k := range prev[sc] {
			if _, ok := next[sc][k]; !ok {
				keys = append(keys, k)
			}
		}
		if len(keys) > 0 {
			changes = append(changes, Change{Scope: sc, Keys: keys})
		}
	}
	return changes
}

func jsonEqual(a, b json.RawMessage) bool {
	var ca, cb bytes.Buffer
	if json.Compact(&ca, a) != nil || json.Compact(&cb, b) != nil {
		return bytes.Equal(a, b)
	}
	return bytes.Equal(ca.Bytes(), cb.Bytes())
}

func nonNil(m map[string]json.RawMessage) map[string]json.RawMessage {
	if m == nil {
		return map[string]json.RawMessage{}
	}
	return m
}
