package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	// Output overrides the destination. Stderr when nil.
	Output io.Writer
	// StderrLevel raises the threshold for the stderr writer of NewWithFile
	// above Level. The file keeps Level.
	StderrLevel zerolog.Level
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var output = out
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a config string onto a zerolog level.
// Unknown values fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromEnv creates a logger based on environment variables
// INCLUDS_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// INCLUDS_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("INCLUDS_LOG_LEVEL"), os.Getenv("INCLUDS_LOG_FORMAT"))
}

// NewFromConfigValues builds a stderr logger from raw config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	if level != "" {
		cfg.Level = ParseLevel(level)
	}
	switch format {
	case "json", "console":
		cfg.Format = format
	}
	return New(cfg)
}

// NewWithFile returns a logger writing to stderr and to a rotated file in dir.
// The returned cleanup closes the file.
func NewWithFile(cfg Config, dir string, rc RotatorConfig) (zerolog.Logger, func(), error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("failed to create log directory: %w", err)
	}

	rotator, err := NewLogRotator(dir, rc)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}

	stderr := cfg.Output
	if stderr == nil {
		stderr = os.Stderr
	}
	if cfg.Format == "console" {
		stderr = zerolog.ConsoleWriter{Out: stderr, TimeFormat: cfg.TimeFormat}
	}

	console := zerolog.LevelWriter(zerolog.LevelWriterAdapter{Writer: stderr})
	if cfg.StderrLevel > cfg.Level {
		console = &zerolog.FilteredLevelWriter{Writer: console, Level: cfg.StderrLevel}
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(console, rotator)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()

	cleanup := func() {
		if err := rotator.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
		}
	}
	return logger, cleanup, nil
}
