package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/domain/entity"
	"github.com/bnema/includs/internal/logging"
)

const keyProbeMaxTokens = 5

// ErrUnknownVoice is returned when selecting a voice that is not in the
// cached voice list.
var ErrUnknownVoice = errors.New("voice not found in cached voice list")

// ManageCredentialsUseCase stores, tests and inspects provider API keys.
// Each provider's validity flag is written only by that provider's test.
type ManageCredentialsUseCase struct {
	store      port.ConfigStore
	completion port.CompletionProvider
	voices     port.VoiceProvider
	defaults   ProviderDefaults
}

func NewManageCredentialsUseCase(
	store port.ConfigStore,
	completion port.CompletionProvider,
	voices port.VoiceProvider,
	defaults ProviderDefaults,
) *ManageCredentialsUseCase {
	return &ManageCredentialsUseCase{
		store:      store,
		completion: completion,
		voices:     voices,
		defaults:   defaults,
	}
}

// normalizeKey trims an OpenAI key and strips every whitespace rune from
// a voice key.
func normalizeKey(p entity.Provider, key string) string {
	if p == entity.ProviderElevenLabs {
		return entity.SanitizeAPIKey(key)
	}
	return strings.TrimSpace(key)
}

// SaveAPIKey stores key for p and clears its validity flag. An empty key
// removes the stored one.
func (uc *ManageCredentialsUseCase) SaveAPIKey(ctx context.Context, p entity.Provider, key string) error {
	log := logging.FromContext(ctx)
	key = normalizeKey(p, key)

	if key == "" {
		if err := uc.store.Remove(ctx, port.ScopeLocal, apiKeyKey(p)); err != nil {
			return fmt.Errorf("failed to remove %s key: %w", p, err)
		}
		if err := uc.store.Set(ctx, port.ScopeLocal, map[string]any{validKey(p): false}); err != nil {
			return fmt.Errorf("failed to clear %s key status: %w", p, err)
		}
		log.Info().Str("provider", string(p)).Msg("api key removed")
		return nil
	}

	if err := uc.store.Set(ctx, port.ScopeLocal, map[string]any{
		apiKeyKey(p): key,
		validKey(p):  false,
	}); err != nil {
		return fmt.Errorf("failed to save %s key: %w", p, err)
	}
	log.Info().Str("provider", string(p)).Str("key", entity.MaskAPIKey(key)).Msg("api key saved")
	return nil
}

// SetCompletionSettings stores the OpenAI endpoint and model. Empty values
// restore the defaults.
func (uc *ManageCredentialsUseCase) SetCompletionSettings(ctx context.Context, endpoint, model string) error {
	set := map[string]any{}
	var remove []string
	for key, v := range map[string]string{KeyOpenAIEndpoint: endpoint, KeyOpenAIModel: model} {
		if v = strings.TrimSpace(v); v == "" {
			remove = append(remove, key)
		} else {
			set[key] = v
		}
	}
	if len(set) > 0 {
		if err := uc.store.Set(ctx, port.ScopeLocal, set); err != nil {
			return fmt.Errorf("failed to save OpenAI settings: %w", err)
		}
	}
	if len(remove) > 0 {
		slices.Sort(remove)
		if err := uc.store.Remove(ctx, port.ScopeLocal, remove...); err != nil {
			return fmt.Errorf("failed to reset OpenAI settings: %w", err)
		}
	}
	return nil
}

// Credential returns the stored credential for p.
func (uc *ManageCredentialsUseCase) Credential(ctx context.Context, p entity.Provider) (entity.ProviderCredential, error) {
	cred, err := loadCredential(ctx, uc.store, p, uc.defaults)
	if err != nil {
		return cred, fmt.Errorf("failed to load credential: %w", err)
	}
	return cred, nil
}

// Status returns both credentials. A provider whose record cannot be read
// is reported with no key.
func (uc *ManageCredentialsUseCase) Status(ctx context.Context) []entity.ProviderCredential {
	log := logging.FromContext(ctx)
	out := make([]entity.ProviderCredential, 0, 2)
	for _, p := range []entity.Provider{entity.ProviderOpenAI, entity.ProviderElevenLabs} {
		cred, err := loadCredential(ctx, uc.store, p, uc.defaults)
		if err != nil {
			log.Warn().Err(err).Str("provider", string(p)).Msg("failed to load credential")
			cred = entity.ProviderCredential{Provider: p}
		}
		out = append(out, cred)
	}
	return out
}

// TestCompletionKey sends a minimal completion with key (or the stored key
// when empty). On success the key is stored as valid; on failure only the
// flag is cleared.
func (uc *ManageCredentialsUseCase) TestCompletionKey(ctx context.Context, key string) entity.KeyTestResult {
	p := entity.ProviderOpenAI
	ctx = logging.WithRequestID(logging.WithProvider(ctx, string(p)), uuid.NewString())
	log := logging.FromContext(ctx)

	cred, err := loadCredential(ctx, uc.store, p, uc.defaults)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load OpenAI settings, using defaults")
	}
	if key = normalizeKey(p, key); key == "" {
		key = cred.APIKey
	}
	if key == "" {
		return keyFailure(p, entity.NewGatewayError(entity.KindValidation, p, 0, "Please enter an API key first"))
	}

	_, err = uc.completion.Complete(ctx, port.CompletionRequest{
		Endpoint:   cred.Endpoint,
		APIKey:     key,
		Model:      cred.Model,
		UserPrompt: "Hi",
		MaxTokens:  keyProbeMaxTokens,
	})
	if err != nil {
		ge := entity.AsGatewayError(err, p)
		log.Warn().Str("kind", string(ge.Kind)).Int("status", ge.StatusCode).Msg("OpenAI key test failed")
		uc.persistValidity(ctx, p, false, nil)
		return keyFailure(p, ge)
	}

	uc.persistValidity(ctx, p, true, map[string]any{KeyOpenAIAPIKey: key})
	log.Info().Msg("OpenAI key is valid")
	return entity.KeyTestResult{Provider: p, Valid: true}
}

// TestVoiceKey sanitizes key (or uses the stored key when empty), lists
// voices with it and caches the result.
func (uc *ManageCredentialsUseCase) TestVoiceKey(ctx context.Context, key string) entity.KeyTestResult {
	p := entity.ProviderElevenLabs
	ctx = logging.WithRequestID(logging.WithProvider(ctx, string(p)), uuid.NewString())
	log := logging.FromContext(ctx)

	if key = normalizeKey(p, key); key == "" {
		cred, err := loadCredential(ctx, uc.store, p, uc.defaults)
		if err != nil {
			log.Warn().Err(err).Msg("failed to load ElevenLabs credential")
		}
		key = cred.APIKey
	}
	if key == "" {
		return keyFailure(p, entity.NewGatewayError(entity.KindValidation, p, 0, "Please enter an API key first"))
	}

	log.Debug().Int("key_length", len(key)).Msg("testing ElevenLabs key")

	voices, err := uc.voices.ListVoices(ctx, key)
	if err != nil {
		ge := entity.AsGatewayError(err, p)
		log.Warn().Str("kind", string(ge.Kind)).Int("status", ge.StatusCode).Msg("ElevenLabs key test failed")
		uc.persistValidity(ctx, p, false, nil)
		return keyFailure(p, ge)
	}

	uc.persistValidity(ctx, p, true, map[string]any{
		KeyElevenLabsAPIKey: key,
		KeyElevenLabsVoices: voices,
	})
	log.Info().Int("voices", len(voices)).Msg("ElevenLabs key is valid")
	return entity.KeyTestResult{Provider: p, Valid: true, Voices: voices}
}

// ListVoices returns the cached voice list, calling the provider with the
// stored key when refresh is set or nothing is cached.
func (uc *ManageCredentialsUseCase) ListVoices(ctx context.Context, refresh bool) ([]entity.Voice, error) {
	cred, err := loadCredential(ctx, uc.store, entity.ProviderElevenLabs, uc.defaults)
	if err != nil {
		return nil, fmt.Errorf("failed to load voice credential: %w", err)
	}
	if !refresh && len(cred.Voices) > 0 {
		return cred.Voices, nil
	}
	if !cred.HasKey() {
		return nil, entity.NewGatewayError(entity.KindConfig, entity.ProviderElevenLabs, 0,
			"ElevenLabs API key not configured. Run `includs keys set elevenlabs` to add one.")
	}

	res := uc.TestVoiceKey(ctx, cred.APIKey)
	if !res.Valid {
		return nil, res.Err
	}
	return res.Voices, nil
}

// SelectVoice stores voiceID as the preferred voice. It must be one of the
// cached voices.
func (uc *ManageCredentialsUseCase) SelectVoice(ctx context.Context, voiceID string) (entity.Voice, error) {
	cred, err := loadCredential(ctx, uc.store, entity.ProviderElevenLabs, uc.defaults)
	if err != nil {
		return entity.Voice{}, fmt.Errorf("failed to load voice credential: %w", err)
	}

	idx := slices.IndexFunc(cred.Voices, func(v entity.Voice) bool { return v.ID == voiceID })
	if idx < 0 {
		return entity.Voice{}, fmt.Errorf("%w: %s", ErrUnknownVoice, voiceID)
	}

	if err := uc.store.Set(ctx, port.ScopeLocal, map[string]any{KeyElevenLabsVoiceID: voiceID}); err != nil {
		return entity.Voice{}, fmt.Errorf("failed to save voice: %w", err)
	}
	logging.FromContext(ctx).Info().Str("voice_id", voiceID).Msg("voice selected")
	return cred.Voices[idx], nil
}

// persistValidity writes p's flag together with extra values. A failed
// write is logged; the caller's result stands.
func (uc *ManageCredentialsUseCase) persistValidity(ctx context.Context, p entity.Provider, valid bool, extra map[string]any) {
	values := map[string]any{validKey(p): valid}
	for k, v := range extra {
		values[k] = v
	}
	if err := uc.store.Set(ctx, port.ScopeLocal, values); err != nil {
		logging.FromContext(ctx).Error().Err(err).Str("provider", string(p)).Msg("failed to persist key status")
	}
}

func keyFailure(p entity.Provider, err *entity.GatewayError) entity.KeyTestResult {
	return entity.KeyTestResult{Provider: p, Err: err}
}
