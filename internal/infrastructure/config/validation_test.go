package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
		{name: "endpoint scheme", mutate: func(c *Config) { c.OpenAI.Endpoint = "ftp://x/y" }, wantErr: "openai.endpoint"},
		{name: "empty model", mutate: func(c *Config) { c.OpenAI.Model = "" }, wantErr: "openai.model"},
		{name: "voice base url", mutate: func(c *Config) { c.ElevenLabs.BaseURL = "not a url" }, wantErr: "elevenlabs.base_url"},
		{name: "negative timeout", mutate: func(c *Config) { c.HTTP.TimeoutSeconds = -1 }, wantErr: "http.timeout_seconds"},
		{name: "cache size", mutate: func(c *Config) { c.Performance.OverrideCacheSize = 0 }, wantErr: "override_cache_size"},
		{name: "palette color", mutate: func(c *Config) { c.Appearance.Palette.Accent = "green" }, wantErr: "appearance.palette.accent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_ReportsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Format = "xml"
	cfg.HTTP.TimeoutSeconds = -5

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.format")
	assert.Contains(t, err.Error(), "http.timeout_seconds")
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = " DEBUG "
	cfg.Secrets.Backend = "Database"
	cfg.Secrets.Service = ""
	cfg.ElevenLabs.BaseURL = "https://api.elevenlabs.io/"

	normalizeConfig(cfg)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, SecretsBackendDatabase, cfg.Secrets.Backend)
	assert.Equal(t, "includs", cfg.Secrets.Service)
	assert.Equal(t, "https://api.elevenlabs.io", cfg.ElevenLabs.BaseURL)

	cfg.Secrets.Backend = "vault"
	normalizeConfig(cfg)
	assert.Equal(t, SecretsBackendKeyring, cfg.Secrets.Backend)
}
