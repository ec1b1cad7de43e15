package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, SecretsBackendKeyring, cfg.Secrets.Backend)
	assert.Equal(t, "https://api.openai.com/v1/chat/completions", cfg.OpenAI.Endpoint)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Zero(t, cfg.HTTPTimeout())

	require.NoError(t, validateConfig(cfg))
}
