package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGatewayError_IsMatchesKind(t *testing.T) {
	err := NewGatewayError(KindAuth, ProviderOpenAI, 401, "Invalid OpenAI API key")
	wrapped := fmt.Errorf("explain: %w", err)

	assert.ErrorIs(t, wrapped, ErrAuth)
	assert.NotErrorIs(t, wrapped, ErrRateLimit)
	assert.Equal(t, KindAuth, KindOf(wrapped))
	assert.Equal(t, "Invalid OpenAI API key", err.Error())
}

func TestAsGatewayError_WrapsForeignErrors(t *testing.T) {
	assert.Nil(t, AsGatewayError(nil, ProviderOpenAI))

	ge := AsGatewayError(errors.New("boom"), ProviderElevenLabs)
	assert.Equal(t, KindProvider, ge.Kind)
	assert.Equal(t, ProviderElevenLabs, ge.Provider)
	assert.Equal(t, "", string(KindOf(errors.New("plain"))))
}

func TestSanitizeAPIKey(t *testing.T) {
	assert.Equal(t, "sk_abc123", SanitizeAPIKey(" sk_abc 123 "))
	assert.Equal(t, "abc", SanitizeAPIKey("a\tb\nc "))
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "", MaskAPIKey(""))
	assert.Equal(t, "*****", MaskAPIKey("short"))
	assert.Equal(t, "sk-a****wxyz", MaskAPIKey("sk-abcdewxyz"))
}

func TestProviderCredential_Status(t *testing.T) {
	assert.Equal(t, KeyNotSet, ProviderCredential{}.Status())
	assert.Equal(t, KeyInvalid, ProviderCredential{APIKey: "k"}.Status())
	assert.Equal(t, KeyValid, ProviderCredential{APIKey: "k", Validated: true}.Status())
}
