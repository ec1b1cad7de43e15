package config

import "github.com/bnema/includs/internal/domain/entity"

const (
	defaultLogLevel          = "info"
	defaultLogFormat         = "console"
	defaultLogMaxSizeMB      = 10
	defaultLogMaxBackups     = 3
	defaultMaxLogAgeDays     = 7
	defaultSecretsService    = "includs"
	defaultUserAgent         = "includs"
	defaultViewportWidth     = 1280
	defaultViewportHeight    = 800
	defaultBrowserTimeoutMS  = 30000
	defaultOverrideCacheSize = 256
)

// DefaultConfig returns the built-in configuration. Database and sync paths
// are filled from the XDG directories at load time.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAge:     defaultMaxLogAgeDays,
			Compress:   true,
		},
		Sync: SyncConfig{
			Watch: true,
		},
		Secrets: SecretsConfig{
			Backend: SecretsBackendKeyring,
			Service: defaultSecretsService,
		},
		OpenAI: OpenAIConfig{
			Endpoint: entity.DefaultOpenAIEndpoint,
			Model:    entity.DefaultOpenAIModel,
		},
		ElevenLabs: ElevenLabsConfig{
			BaseURL: entity.DefaultElevenLabsBaseURL,
		},
		HTTP: HTTPConfig{
			UserAgent: defaultUserAgent,
		},
		Browser: BrowserConfig{
			Headless:       true,
			ViewportWidth:  defaultViewportWidth,
			ViewportHeight: defaultViewportHeight,
			TimeoutMS:      defaultBrowserTimeoutMS,
		},
		Performance: PerformanceConfig{
			OverrideCacheSize: defaultOverrideCacheSize,
		},
		Appearance: AppearanceConfig{
			Palette: DefaultPalette(),
		},
	}
}

// DefaultPalette is the dark palette used when none is configured.
func DefaultPalette() ColorPalette {
	return ColorPalette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
	}
}
