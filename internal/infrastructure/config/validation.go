package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/includs/internal/domain/validation"
	"github.com/bnema/includs/internal/logging"
)

// validateConfig collects every problem so the user can fix them in one go.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateProviders(config)...)
	validationErrors = append(validationErrors, validateHTTP(config)...)
	validationErrors = append(validationErrors, validateBrowser(config)...)
	validationErrors = append(validationErrors, validatePerformance(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	level := config.Logging.Level
	if level != "" && level != "info" && logging.ParseLevel(level).String() == "info" {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	return validationErrors
}

func validateProviders(config *Config) []string {
	var validationErrors []string
	if msg := validateHTTPURL("openai.endpoint", config.OpenAI.Endpoint); msg != "" {
		validationErrors = append(validationErrors, msg)
	}
	if config.OpenAI.Model == "" {
		validationErrors = append(validationErrors, "openai.model cannot be empty")
	}
	if msg := validateHTTPURL("elevenlabs.base_url", config.ElevenLabs.BaseURL); msg != "" {
		validationErrors = append(validationErrors, msg)
	}
	return validationErrors
}

func validateHTTPURL(field, raw string) string {
	u, err := url.Parse(raw)
	if err != nil || raw == "" {
		return fmt.Sprintf("%s must be a valid URL (got %q)", field, raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Sprintf("%s must use http or https (got %q)", field, raw)
	}
	if u.Host == "" {
		return fmt.Sprintf("%s must include a host (got %q)", field, raw)
	}
	return ""
}

func validateHTTP(config *Config) []string {
	if config.HTTP.TimeoutSeconds < 0 {
		return []string{"http.timeout_seconds must be non-negative (0 disables the timeout)"}
	}
	return nil
}

func validateBrowser(config *Config) []string {
	var validationErrors []string
	if config.Browser.ViewportWidth < 0 || config.Browser.ViewportHeight < 0 {
		validationErrors = append(validationErrors, "browser viewport dimensions must be non-negative")
	}
	if config.Browser.TimeoutMS < 0 {
		validationErrors = append(validationErrors, "browser.timeout_ms must be non-negative")
	}
	return validationErrors
}

func validatePerformance(config *Config) []string {
	if config.Performance.OverrideCacheSize < 1 {
		return []string{"performance.override_cache_size must be at least 1"}
	}
	return nil
}

func validateAppearance(config *Config) []string {
	p := config.Appearance.Palette
	return validation.ValidatePaletteHex("appearance.palette",
		validation.NamedColor{Name: "background", Value: p.Background},
		validation.NamedColor{Name: "surface", Value: p.Surface},
		validation.NamedColor{Name: "surface_variant", Value: p.SurfaceVariant},
		validation.NamedColor{Name: "text", Value: p.Text},
		validation.NamedColor{Name: "muted", Value: p.Muted},
		validation.NamedColor{Name: "accent", Value: p.Accent},
		validation.NamedColor{Name: "border", Value: p.Border},
	)
}
