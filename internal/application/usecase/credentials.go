package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/domain/entity"
)

// ProviderDefaults are the endpoint and model used when none is stored.
type ProviderDefaults struct {
	OpenAIEndpoint string
	OpenAIModel    string
}

func (d ProviderDefaults) withFallbacks() ProviderDefaults {
	if d.OpenAIEndpoint == "" {
		d.OpenAIEndpoint = entity.DefaultOpenAIEndpoint
	}
	if d.OpenAIModel == "" {
		d.OpenAIModel = entity.DefaultOpenAIModel
	}
	return d
}

// credentialKeys lists the local keys read for p.
func credentialKeys(p entity.Provider) []string {
	if p == entity.ProviderElevenLabs {
		return []string{KeyElevenLabsAPIKey, KeyElevenLabsVoiceID, KeyElevenLabsKeyValid, KeyElevenLabsVoices}
	}
	return []string{KeyOpenAIAPIKey, KeyOpenAIEndpoint, KeyOpenAIModel, KeyOpenAIKeyValid}
}

// apiKeyKey is the local key holding p's API key.
func apiKeyKey(p entity.Provider) string {
	if p == entity.ProviderElevenLabs {
		return KeyElevenLabsAPIKey
	}
	return KeyOpenAIAPIKey
}

// validKey is the local key holding p's cached validity flag.
func validKey(p entity.Provider) string {
	if p == entity.ProviderElevenLabs {
		return KeyElevenLabsKeyValid
	}
	return KeyOpenAIKeyValid
}

func loadCredential(
	ctx context.Context,
	store port.ConfigStore,
	p entity.Provider,
	defaults ProviderDefaults,
) (entity.ProviderCredential, error) {
	defaults = defaults.withFallbacks()
	cred := entity.ProviderCredential{Provider: p}
	if p == entity.ProviderOpenAI {
		cred.Endpoint = defaults.OpenAIEndpoint
		cred.Model = defaults.OpenAIModel
	}

	values, err := store.Get(ctx, port.ScopeLocal, credentialKeys(p)...)
	if err != nil {
		return cred, fmt.Errorf("read %s credential: %w", p, err)
	}

	cred.APIKey = stringOr(values, apiKeyKey(p), "")
	cred.Validated = boolOr(values, validKey(p), false)

	switch p {
	case entity.ProviderOpenAI:
		cred.Endpoint = stringOr(values, KeyOpenAIEndpoint, cred.Endpoint)
		cred.Model = stringOr(values, KeyOpenAIModel, cred.Model)
	case entity.ProviderElevenLabs:
		cred.VoiceID = stringOr(values, KeyElevenLabsVoiceID, "")
		if _, err := decodeKey(values, KeyElevenLabsVoices, &cred.Voices); err != nil {
			return cred, err
		}
	}
	return cred, nil
}
