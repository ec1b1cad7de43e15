// Package config loads the includs TOML configuration through Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	created   bool
}

// NewManager creates a manager reading config.toml from the XDG config
// directory, with INCLUDS_* environment overrides.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return newManager(configDir)
}

// NewManagerAt creates a manager for an explicit config file.
func NewManagerAt(path string) (*Manager, error) {
	m, err := newManager(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	m.viper.SetConfigFile(path)
	return m, nil
}

func newManager(configDir string) (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// INCLUDS_DATABASE_PATH, INCLUDS_OPENAI_MODEL, ...
	v.SetEnvPrefix("INCLUDS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short forms shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", "INCLUDS_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind INCLUDS_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "INCLUDS_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind INCLUDS_LOG_FORMAT: %w", err)
	}

	return &Manager{viper: v, callbacks: make([]func(*Config), 0)}, nil
}

// Load reads the file (creating a default one if missing) and environment.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := fillPaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

// Created reports whether Load wrote a fresh default file.
func (m *Manager) Created() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.created
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configPath(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf("failed to create default config at %s: %w", m.configPath(), createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) configPath() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	path, _ := GetConfigFile()
	return path
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// fillPaths resolves empty paths to their XDG locations.
func fillPaths(config *Config) error {
	if config.Database.Path == "" {
		p, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = p
	}
	if config.Sync.Path == "" {
		p, err := GetSyncFile()
		if err != nil {
			return fmt.Errorf("failed to get sync path: %w", err)
		}
		config.Sync.Path = p
	}
	if config.Logging.EnableFileLog && config.Logging.LogDir == "" {
		p, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.LogDir = p
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}

	switch SecretsBackend(strings.ToLower(string(config.Secrets.Backend))) {
	case SecretsBackendDatabase:
		config.Secrets.Backend = SecretsBackendDatabase
	default:
		config.Secrets.Backend = SecretsBackendKeyring
	}
	if config.Secrets.Service == "" {
		config.Secrets.Service = defaultSecretsService
	}

	config.OpenAI.Endpoint = strings.TrimSpace(config.OpenAI.Endpoint)
	config.OpenAI.Model = strings.TrimSpace(config.OpenAI.Model)
	config.ElevenLabs.BaseURL = strings.TrimRight(strings.TrimSpace(config.ElevenLabs.BaseURL), "/")
	config.Database.Path = expandHome(config.Database.Path)
	config.Sync.Path = expandHome(config.Sync.Path)
	config.Logging.LogDir = expandHome(config.Logging.LogDir)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// HTTPTimeout returns the per-request timeout, zero for none.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}

// createDefaultConfig writes the defaults and the JSON schema next to them.
func (m *Manager) createDefaultConfig() error {
	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		var err error
		if configFile, err = GetConfigFile(); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	if _, err := WriteSchemaFile(filepath.Dir(configFile)); err != nil {
		return err
	}

	m.viper.SetConfigFile(configFile)
	m.created = true
	return nil
}

// setDefaults registers every default so env overrides work for keys the
// file does not mention.
func (m *Manager) setDefaults() {
	d := DefaultConfig()

	m.viper.SetDefault("logging.level", d.Logging.Level)
	m.viper.SetDefault("logging.format", d.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", d.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", d.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", d.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", d.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", d.Logging.MaxAge)
	m.viper.SetDefault("logging.compress", d.Logging.Compress)

	m.viper.SetDefault("database.path", d.Database.Path)
	m.viper.SetDefault("sync.path", d.Sync.Path)
	m.viper.SetDefault("sync.watch", d.Sync.Watch)

	m.viper.SetDefault("secrets.backend", string(d.Secrets.Backend))
	m.viper.SetDefault("secrets.service", d.Secrets.Service)

	m.viper.SetDefault("openai.endpoint", d.OpenAI.Endpoint)
	m.viper.SetDefault("openai.model", d.OpenAI.Model)
	m.viper.SetDefault("elevenlabs.base_url", d.ElevenLabs.BaseURL)

	m.viper.SetDefault("http.timeout_seconds", d.HTTP.TimeoutSeconds)
	m.viper.SetDefault("http.user_agent", d.HTTP.UserAgent)

	m.viper.SetDefault("browser.headless", d.Browser.Headless)
	m.viper.SetDefault("browser.install_driver", d.Browser.InstallDriver)
	m.viper.SetDefault("browser.viewport_width", d.Browser.ViewportWidth)
	m.viper.SetDefault("browser.viewport_height", d.Browser.ViewportHeight)
	m.viper.SetDefault("browser.timeout_ms", d.Browser.TimeoutMS)

	m.viper.SetDefault("performance.override_cache_size", d.Performance.OverrideCacheSize)

	p := d.Appearance.Palette
	m.viper.SetDefault("appearance.palette.background", p.Background)
	m.viper.SetDefault("appearance.palette.surface", p.Surface)
	m.viper.SetDefault("appearance.palette.surface_variant", p.SurfaceVariant)
	m.viper.SetDefault("appearance.palette.text", p.Text)
	m.viper.SetDefault("appearance.palette.muted", p.Muted)
	m.viper.SetDefault("appearance.palette.accent", p.Accent)
	m.viper.SetDefault("appearance.palette.border", p.Border)
}
