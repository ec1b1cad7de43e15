package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/domain/entity"
	"github.com/bnema/includs/internal/domain/validation"
	"github.com/bnema/includs/internal/logging"
)

// ErrInvalidPreferences wraps validation failures from Save and SetValue.
var ErrInvalidPreferences = errors.New("invalid preferences")

// ManagePreferencesUseCase reads and writes the synced preferences record
// and handles first-run setup.
type ManagePreferencesUseCase struct {
	store    port.ConfigStore
	defaults ProviderDefaults
}

func NewManagePreferencesUseCase(store port.ConfigStore, defaults ProviderDefaults) *ManagePreferencesUseCase {
	return &ManagePreferencesUseCase{store: store, defaults: defaults.withFallbacks()}
}

// Load returns the stored preferences with defaults for missing keys.
func (uc *ManagePreferencesUseCase) Load(ctx context.Context) (entity.Preferences, error) {
	values, err := uc.store.Get(ctx, port.ScopeSynced)
	if err != nil {
		return entity.DefaultPreferences(), fmt.Errorf("failed to load preferences: %w", err)
	}

	// Decode over the defaults so absent keys keep their default value.
	prefs := entity.DefaultPreferences()
	prefs.Version = 0
	data, err := json.Marshal(values)
	if err != nil {
		return entity.DefaultPreferences(), fmt.Errorf("failed to load preferences: %w", err)
	}
	if err := json.Unmarshal(data, &prefs); err != nil {
		return entity.DefaultPreferences(), fmt.Errorf("failed to decode preferences: %w", err)
	}
	return prefs, nil
}

// Save validates and stores every field of prefs.
func (uc *ManagePreferencesUseCase) Save(ctx context.Context, prefs entity.Preferences) error {
	if errs := validation.Preferences(prefs); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPreferences, strings.Join(errs, "; "))
	}
	prefs.FontScale = entity.RoundToTenth(prefs.FontScale)
	prefs.LineHeight = entity.RoundToTenth(prefs.LineHeight)
	if prefs.Version == 0 {
		prefs.Version = entity.PreferencesVersion
	}

	if err := uc.store.Set(ctx, port.ScopeSynced, preferenceValues(prefs)); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	logging.FromContext(ctx).Info().Msg("preferences saved")
	return nil
}

// SetValue parses raw for a single preference key and saves the result.
func (uc *ManagePreferencesUseCase) SetValue(ctx context.Context, key, raw string) (entity.Preferences, error) {
	prefs, err := uc.Load(ctx)
	if err != nil {
		return prefs, err
	}

	if err := applyPreference(&prefs, key, raw); err != nil {
		return prefs, fmt.Errorf("%w: %v", ErrInvalidPreferences, err)
	}
	return prefs, uc.Save(ctx, prefs)
}

func applyPreference(p *entity.Preferences, key, raw string) error {
	raw = strings.TrimSpace(raw)
	switch key {
	case KeyEnabledByDefault, KeyHelpTipsEnabled:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%s expects true or false", key)
		}
		if key == KeyEnabledByDefault {
			p.EnabledByDefault = b
		} else {
			p.HelpTipsEnabled = b
		}
	case KeyFontScale, KeyLineHeight:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%s expects a number", key)
		}
		if key == KeyFontScale {
			p.FontScale = f
		} else {
			p.LineHeight = f
		}
	case KeyTTSSpeed:
		p.TTSSpeed = entity.TTSSpeed(raw)
	case KeyToolbarPosition:
		p.ToolbarPosition = entity.ToolbarPosition(raw)
	case KeyExplainMode:
		p.ExplainMode = raw
	case KeyOpenAIPrompt:
		p.OpenAIPrompt = raw
	default:
		return fmt.Errorf("unknown preference %q", key)
	}
	return nil
}

// ResetAll restores synced and local defaults. Both API keys are kept;
// their validity flags are cleared. Site overrides are not touched.
func (uc *ManagePreferencesUseCase) ResetAll(ctx context.Context) error {
	log := logging.FromContext(ctx)

	if err := uc.store.Set(ctx, port.ScopeSynced, preferenceValues(entity.DefaultPreferences())); err != nil {
		return fmt.Errorf("failed to reset preferences: %w", err)
	}
	if err := uc.store.Remove(ctx, port.ScopeSynced, KeyOpenAIPrompt); err != nil {
		return fmt.Errorf("failed to reset preferences: %w", err)
	}

	if err := uc.store.Set(ctx, port.ScopeLocal, map[string]any{
		KeyOpenAIEndpoint:     uc.defaults.OpenAIEndpoint,
		KeyOpenAIModel:        uc.defaults.OpenAIModel,
		KeyOpenAIKeyValid:     false,
		KeyElevenLabsVoiceID:  "",
		KeyElevenLabsKeyValid: false,
		KeyElevenLabsVoices:   []entity.Voice{},
	}); err != nil {
		return fmt.Errorf("failed to reset local settings: %w", err)
	}

	log.Info().Msg("settings reset to defaults, api keys kept")
	return nil
}

// EnsureInstalled writes default preferences on first run and reports
// whether this was the first run. A record with an old, missing or
// unreadable version gets only its missing keys filled in and the version
// bumped; stored values are never replaced.
func (uc *ManagePreferencesUseCase) EnsureInstalled(ctx context.Context) (bool, error) {
	log := logging.FromContext(ctx)

	values, err := uc.store.Get(ctx, port.ScopeSynced)
	if err != nil {
		return false, fmt.Errorf("failed to read install state: %w", err)
	}

	var version int
	found, err := decodeKey(values, KeyVersion, &version)
	if err != nil {
		log.Warn().Err(err).Msg("unreadable preferences version, filling in missing keys")
		found = false
	}
	if found && version >= entity.PreferencesVersion {
		return false, nil
	}

	firstRun := len(values) == 0
	missing := map[string]any{KeyVersion: entity.PreferencesVersion}
	for k, v := range preferenceValues(entity.DefaultPreferences()) {
		if _, ok := values[k]; !ok && k != KeyVersion {
			missing[k] = v
		}
	}
	if err := uc.store.Set(ctx, port.ScopeSynced, missing); err != nil {
		return false, fmt.Errorf("failed to write default preferences: %w", err)
	}

	if firstRun {
		log.Info().Int("version", entity.PreferencesVersion).Msg("first run, default preferences written")
	} else {
		log.Info().Int("from", version).Int("to", entity.PreferencesVersion).
			Int("filled", len(missing)-1).Msg("preferences upgraded")
	}
	return firstRun, nil
}

func preferenceValues(p entity.Preferences) map[string]any {
	values := map[string]any{
		KeyEnabledByDefault: p.EnabledByDefault,
		KeyFontScale:        p.FontScale,
		KeyLineHeight:       p.LineHeight,
		KeyTTSSpeed:         p.TTSSpeed,
		KeyToolbarPosition:  p.ToolbarPosition,
		KeyExplainMode:      p.ExplainMode,
		KeyHelpTipsEnabled:  p.HelpTipsEnabled,
		KeyVersion:          p.Version,
	}
	if p.OpenAIPrompt != "" {
		values[KeyOpenAIPrompt] = p.OpenAIPrompt
	}
	return values
}
