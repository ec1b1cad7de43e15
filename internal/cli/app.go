// Package cli wires the includs stack for the command line and the toolbar TUI.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/application/usecase"
	"github.com/bnema/includs/internal/cli/styles"
	"github.com/bnema/includs/internal/domain/entity"
	"github.com/bnema/includs/internal/infrastructure/cache"
	"github.com/bnema/includs/internal/infrastructure/clipboard"
	"github.com/bnema/includs/internal/infrastructure/config"
	"github.com/bnema/includs/internal/infrastructure/httpclient"
	"github.com/bnema/includs/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/includs/internal/infrastructure/provider/elevenlabs"
	"github.com/bnema/includs/internal/infrastructure/provider/openai"
	"github.com/bnema/includs/internal/infrastructure/secrets"
	"github.com/bnema/includs/internal/infrastructure/storage"
	"github.com/bnema/includs/internal/logging"
)

// Options tune NewApp from persistent command-line flags.
type Options struct {
	// Verbose logs at the configured level on stderr instead of warnings only.
	Verbose bool
	// LogOutput overrides stderr, mostly for tests.
	LogOutput io.Writer
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	Manager   *config.Manager
	Store     port.ConfigStore
	Synced    *storage.FileStore
	Clipboard port.Clipboard

	// FirstRun is set when this invocation wrote the default preferences.
	FirstRun bool

	// Use cases
	PreferencesUC *usecase.ManagePreferencesUseCase
	CredentialsUC *usecase.ManageCredentialsUseCase
	ExplainUC     *usecase.ExplainTextUseCase

	overrides port.Cache[string, *entity.SiteOverride]
	db        *sqlite.LazyDB

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies. The local
// database is opened on first use.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	theme := styles.NewTheme(cfg)

	logger, logCleanup, err := newLogger(cfg, opts)
	if err != nil {
		return nil, err
	}
	ctx := logging.WithContext(context.Background(), logger)

	synced, err := storage.NewFileStore(cfg.Sync.Path)
	if err != nil {
		logCleanup()
		return nil, fmt.Errorf("open synced preferences: %w", err)
	}
	if err := synced.LoadError(); err != nil {
		logger.Warn().Err(err).
			Str("path", synced.Path()).
			Msg("synced preferences unreadable, using defaults until the next save")
	}

	db := sqlite.NewLazyDB(cfg.Database.Path)
	local := sqlite.NewLazyKVStore(db)
	if cfg.Secrets.Backend == config.SecretsBackendKeyring {
		local = storage.NewSecretOverlay(local, secrets.NewKeyringStore(cfg.Secrets.Service),
			usecase.KeyOpenAIAPIKey, usecase.KeyElevenLabsAPIKey)
	}
	store := storage.NewRouter(synced, local)

	client := httpclient.New(cfg.HTTPTimeout(), cfg.HTTP.UserAgent)
	completion := openai.NewProvider(client)
	voices := elevenlabs.NewProvider(client, cfg.ElevenLabs.BaseURL)
	defaults := usecase.ProviderDefaults{
		OpenAIEndpoint: cfg.OpenAI.Endpoint,
		OpenAIModel:    cfg.OpenAI.Model,
	}

	app := &App{
		Config:        cfg,
		Theme:         theme,
		Manager:       mgr,
		Store:         store,
		Synced:        synced,
		Clipboard:     clipboard.New(),
		PreferencesUC: usecase.NewManagePreferencesUseCase(store, defaults),
		CredentialsUC: usecase.NewManageCredentialsUseCase(store, completion, voices, defaults),
		ExplainUC:     usecase.NewExplainTextUseCase(store, completion, defaults),
		overrides:     cache.NewLRU[string, *entity.SiteOverride](cfg.Performance.OverrideCacheSize),
		db:            db,
		ctx:           ctx,
		logCleanup:    logCleanup,
	}

	firstRun, err := app.PreferencesUC.EnsureInstalled(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to install default preferences")
	}
	app.FirstRun = firstRun

	logger.Debug().
		Str("config", mgr.GetConfigFile()).
		Str("db_path", cfg.Database.Path).
		Str("sync_path", cfg.Sync.Path).
		Str("secrets", string(cfg.Secrets.Backend)).
		Bool("first_run", firstRun).
		Msg("app initialized")

	return app, nil
}

// newLogger builds the CLI logger. Without Verbose only warnings reach
// stderr so command output stays readable.
func newLogger(cfg *config.Config, opts Options) (zerolog.Logger, func(), error) {
	level := logging.ParseLevel(cfg.Logging.Level)
	if !opts.Verbose && level < zerolog.WarnLevel {
		level = zerolog.WarnLevel
	}
	logCfg := logging.Config{
		Level:      level,
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
		Output:     opts.LogOutput,
	}

	if !cfg.Logging.EnableFileLog {
		return logging.New(logCfg), func() {}, nil
	}

	logCfg.StderrLevel = level
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	logger, cleanup, err := logging.NewWithFile(logCfg, cfg.Logging.LogDir, logging.RotatorConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAge,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("open log file: %w", err)
	}
	return logger, cleanup, nil
}

// Typography returns a resolver that applies to sheet. Every resolver
// shares the app's override cache.
func (a *App) Typography(sheet port.StyleSheet) *usecase.ManageTypographyUseCase {
	var applier *usecase.ApplyTypographyUseCase
	if sheet != nil {
		applier = usecase.NewApplyTypographyUseCase(sheet)
	}
	return usecase.NewManageTypographyUseCase(a.Store, a.overrides, applier)
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
