package port

import (
	"context"

	"github.com/bnema/includs/internal/domain/entity"
)

// CompletionRequest is one chat-completion call.
type CompletionRequest struct {
	Endpoint     string
	APIKey       string
	Model        string
	SystemPrompt string // omitted from the request when empty
	UserPrompt   string
	MaxTokens    int64
	Temperature  *float64 // provider default when nil
}

// CompletionProvider calls a text-completion API.
// Every returned error is an *entity.GatewayError.
type CompletionProvider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// VoiceProvider lists the voices available to a key.
// Every returned error is an *entity.GatewayError.
type VoiceProvider interface {
	ListVoices(ctx context.Context, apiKey string) ([]entity.Voice, error)
}
