package config

// Config represents the complete configuration for includs.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
	// Sync locates the file holding account-wide preferences. Point it at a
	// synced folder to share preferences between machines.
	Sync    SyncConfig    `mapstructure:"sync" yaml:"sync" toml:"sync" json:"sync"`
	Secrets SecretsConfig `mapstructure:"secrets" yaml:"secrets" toml:"secrets" json:"secrets"`
	// OpenAI holds the endpoint and model used until `includs keys` stores others.
	OpenAI     OpenAIConfig     `mapstructure:"openai" yaml:"openai" toml:"openai" json:"openai"`
	ElevenLabs ElevenLabsConfig `mapstructure:"elevenlabs" yaml:"elevenlabs" toml:"elevenlabs" json:"elevenlabs"`
	HTTP       HTTPConfig       `mapstructure:"http" yaml:"http" toml:"http" json:"http"`
	// Browser configures the headless Chromium used by `includs preview`.
	Browser     BrowserConfig     `mapstructure:"browser" yaml:"browser" toml:"browser" json:"browser"`
	Performance PerformanceConfig `mapstructure:"performance" yaml:"performance" toml:"performance" json:"performance"`
	Appearance  AppearanceConfig  `mapstructure:"appearance" yaml:"appearance" toml:"appearance" json:"appearance"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level         string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	// LogDir defaults to $XDG_STATE_HOME/includs/logs.
	LogDir     string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age" toml:"max_age" json:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress" toml:"compress" json:"compress"`
}

// DatabaseConfig locates the device-local SQLite store.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
}

// SyncConfig locates the synced preferences file.
type SyncConfig struct {
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
	// Watch makes the toolbar pick up changes written by other machines.
	Watch bool `mapstructure:"watch" yaml:"watch" toml:"watch" json:"watch"`
}

// SecretsBackend selects where API keys are kept.
type SecretsBackend string

const (
	// SecretsBackendKeyring stores API keys in the OS keyring.
	SecretsBackendKeyring SecretsBackend = "keyring"
	// SecretsBackendDatabase stores API keys in the local database.
	SecretsBackendDatabase SecretsBackend = "database"
)

// SecretsConfig controls API key storage.
type SecretsConfig struct {
	Backend SecretsBackend `mapstructure:"backend" yaml:"backend" toml:"backend" json:"backend" jsonschema:"enum=keyring,enum=database"`
	Service string         `mapstructure:"service" yaml:"service" toml:"service" json:"service"`
}

// OpenAIConfig holds completion defaults.
type OpenAIConfig struct {
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint" toml:"endpoint" json:"endpoint"`
	Model    string `mapstructure:"model" yaml:"model" toml:"model" json:"model"`
}

// ElevenLabsConfig holds the voice API location.
type ElevenLabsConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url" toml:"base_url" json:"base_url"`
}

// HTTPConfig tunes outbound requests. Requests are never retried.
type HTTPConfig struct {
	// TimeoutSeconds bounds each request; 0 keeps the transport default.
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds" toml:"timeout_seconds" json:"timeout_seconds"`
	UserAgent      string `mapstructure:"user_agent" yaml:"user_agent" toml:"user_agent" json:"user_agent"`
}

// BrowserConfig controls the preview browser.
type BrowserConfig struct {
	Headless bool `mapstructure:"headless" yaml:"headless" toml:"headless" json:"headless"`
	// InstallDriver downloads the Playwright driver and Chromium on first use.
	InstallDriver  bool    `mapstructure:"install_driver" yaml:"install_driver" toml:"install_driver" json:"install_driver"`
	ViewportWidth  int     `mapstructure:"viewport_width" yaml:"viewport_width" toml:"viewport_width" json:"viewport_width"`
	ViewportHeight int     `mapstructure:"viewport_height" yaml:"viewport_height" toml:"viewport_height" json:"viewport_height"`
	TimeoutMS      float64 `mapstructure:"timeout_ms" yaml:"timeout_ms" toml:"timeout_ms" json:"timeout_ms"`
}

// PerformanceConfig holds internal tuning options.
type PerformanceConfig struct {
	// OverrideCacheSize caps the in-process per-site override cache.
	OverrideCacheSize int `mapstructure:"override_cache_size" yaml:"override_cache_size" toml:"override_cache_size" json:"override_cache_size"`
}

// AppearanceConfig styles the terminal output.
type AppearanceConfig struct {
	Palette ColorPalette `mapstructure:"palette" yaml:"palette" toml:"palette" json:"palette"`
}

// ColorPalette holds #RRGGBB colors for the CLI theme.
type ColorPalette struct {
	Background     string `mapstructure:"background" yaml:"background" toml:"background" json:"background"`
	Surface        string `mapstructure:"surface" yaml:"surface" toml:"surface" json:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" yaml:"surface_variant" toml:"surface_variant" json:"surface_variant"`
	Text           string `mapstructure:"text" yaml:"text" toml:"text" json:"text"`
	Muted          string `mapstructure:"muted" yaml:"muted" toml:"muted" json:"muted"`
	Accent         string `mapstructure:"accent" yaml:"accent" toml:"accent" json:"accent"`
	Border         string `mapstructure:"border" yaml:"border" toml:"border" json:"border"`
}
