package entity

import (
	"fmt"
	"strings"
	"unicode"
)

// Provider identifies an external HTTP service.
type Provider string

const (
	ProviderOpenAI     Provider = "openai"
	ProviderElevenLabs Provider = "elevenlabs"
)

// ParseProvider accepts a provider name from the command line.
func ParseProvider(s string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "openai":
		return ProviderOpenAI, nil
	case "elevenlabs", "eleven-labs", "eleven":
		return ProviderElevenLabs, nil
	}
	return "", fmt.Errorf("unknown provider %q (expected openai or elevenlabs)", s)
}

// DisplayName is the human label used in messages.
func (p Provider) DisplayName() string {
	switch p {
	case ProviderOpenAI:
		return "OpenAI"
	case ProviderElevenLabs:
		return "ElevenLabs"
	}
	return string(p)
}

const (
	DefaultOpenAIEndpoint    = "https://api.openai.com/v1/chat/completions"
	DefaultOpenAIModel       = "gpt-4o-mini"
	DefaultElevenLabsBaseURL = "https://api.elevenlabs.io"
)

// Voice is one entry from the voice provider's catalogue.
type Voice struct {
	ID         string `json:"voice_id" yaml:"voice_id"`
	Name       string `json:"name" yaml:"name"`
	PreviewURL string `json:"preview_url,omitempty" yaml:"preview_url,omitempty"`
}

// ProviderCredential is a stored API key plus the provider configuration
// it is used with. Validated caches the last test outcome and is advisory.
type ProviderCredential struct {
	Provider  Provider `json:"provider" yaml:"provider"`
	APIKey    string   `json:"-" yaml:"-"`
	Endpoint  string   `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	Model     string   `json:"model,omitempty" yaml:"model,omitempty"`
	Validated bool     `json:"validated" yaml:"validated"`
	VoiceID   string   `json:"voiceId,omitempty" yaml:"voiceId,omitempty"`
	Voices    []Voice  `json:"voices,omitempty" yaml:"voices,omitempty"`
}

// HasKey reports whether a key is configured.
func (c ProviderCredential) HasKey() bool {
	return c.APIKey != ""
}

// KeyStatus is the display state of a stored key.
type KeyStatus string

const (
	KeyNotSet  KeyStatus = "not set"
	KeyValid   KeyStatus = "valid"
	KeyInvalid KeyStatus = "invalid"
)

// Status derives the display state.
func (c ProviderCredential) Status() KeyStatus {
	switch {
	case !c.HasKey():
		return KeyNotSet
	case c.Validated:
		return KeyValid
	default:
		return KeyInvalid
	}
}

// SanitizeAPIKey strips every whitespace rune, including ones inside the key.
func SanitizeAPIKey(key string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, key)
}

// MaskAPIKey keeps the first and last four characters of key.
func MaskAPIKey(key string) string {
	if key == "" {
		return ""
	}
	r := []rune(key)
	if len(r) <= 8 {
		return strings.Repeat("*", len(r))
	}
	return string(r[:4]) + strings.Repeat("*", len(r)-8) + string(r[len(r)-4:])
}
