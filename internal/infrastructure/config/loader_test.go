package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("ENV", "")
	return root
}

func TestManager_CreatesDefaultFile(t *testing.T) {
	root := isolateXDG(t)
	path := filepath.Join(root, "config", "includs", "config.toml")

	m, err := NewManagerAt(path)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	assert.True(t, m.Created())
	assert.FileExists(t, path)
	assert.FileExists(t, filepath.Join(filepath.Dir(path), "config.schema.json"))

	cfg := m.Get()
	assert.Equal(t, filepath.Join(root, "data", "includs", "includs.sqlite"), cfg.Database.Path)
	assert.Equal(t, filepath.Join(root, "data", "includs", "preferences.json"), cfg.Sync.Path)
}

func TestManager_ReadsFileAndEnv(t *testing.T) {
	root := isolateXDG(t)
	path := filepath.Join(root, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[openai]
model = 'gpt-4.1-mini'

[secrets]
backend = 'database'

[sync]
path = '/srv/sync/includs.json'
`), 0o644))

	t.Setenv("INCLUDS_HTTP_TIMEOUT_SECONDS", "15")
	t.Setenv("INCLUDS_LOG_LEVEL", "debug")

	m, err := NewManagerAt(path)
	require.NoError(t, err)
	require.NoError(t, m.Load())
	assert.False(t, m.Created())

	cfg := m.Get()
	assert.Equal(t, "gpt-4.1-mini", cfg.OpenAI.Model)
	assert.Equal(t, "https://api.openai.com/v1/chat/completions", cfg.OpenAI.Endpoint)
	assert.Equal(t, SecretsBackendDatabase, cfg.Secrets.Backend)
	assert.Equal(t, "/srv/sync/includs.json", cfg.Sync.Path)
	assert.Equal(t, 15, cfg.HTTP.TimeoutSeconds)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestManager_InvalidFile(t *testing.T) {
	root := isolateXDG(t)
	path := filepath.Join(root, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[performance]\noverride_cache_size = 0\n"), 0o644))

	m, err := NewManagerAt(path)
	require.NoError(t, err)

	err = m.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "override_cache_size")
}

func TestManager_GetBeforeLoadReturnsDefaults(t *testing.T) {
	m, err := NewManagerAt(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), m.Get())
}
