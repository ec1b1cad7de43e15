// Package openai calls an OpenAI compatible chat completions endpoint.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/domain/entity"
	"github.com/bnema/includs/internal/logging"
	"github.com/openai/openai-go"
	"github.com/tidwall/gjson"
)

const (
	msgInvalidKey  = "Invalid OpenAI API key. Please check your key with `includs keys test openai`."
	msgRateLimited = "Rate limit exceeded. Please try again later."
	msgBadRequest  = "Invalid request to OpenAI."
	msgNoResponse  = "No response from OpenAI"
	msgNetwork     = "Network error. Please check your internet connection."
)

// Provider implements port.CompletionProvider over port.HTTPClient.
// Endpoint, key and model come with each request.
type Provider struct {
	http port.HTTPClient
}

var _ port.CompletionProvider = (*Provider)(nil)

func NewProvider(client port.HTTPClient) *Provider {
	return &Provider{http: client}
}

// Complete sends one chat completion and returns the first choice's content.
func (p *Provider) Complete(ctx context.Context, req port.CompletionRequest) (string, error) {
	log := logging.FromContext(ctx)

	body, err := buildRequestBody(req)
	if err != nil {
		return "", &entity.GatewayError{
			Kind:     entity.KindValidation,
			Provider: entity.ProviderOpenAI,
			Message:  "Failed to build OpenAI request.",
			Err:      err,
		}
	}

	resp, err := p.http.Post(ctx, req.Endpoint, map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + req.APIKey,
	}, body)
	if err != nil {
		log.Debug().Err(err).Str("endpoint", req.Endpoint).Msg("completion transport failure")
		return "", &entity.GatewayError{
			Kind:     entity.KindNetwork,
			Provider: entity.ProviderOpenAI,
			Message:  msgNetwork,
			Err:      err,
		}
	}

	if !resp.IsSuccess() {
		ge := statusError(resp)
		log.Debug().Int("status", resp.StatusCode).Str("kind", string(ge.Kind)).Msg("completion rejected")
		return "", ge
	}

	content := gjson.GetBytes(resp.Body, "choices.0.message.content").String()
	if strings.TrimSpace(content) == "" {
		return "", entity.NewGatewayError(entity.KindProvider, entity.ProviderOpenAI, resp.StatusCode, msgNoResponse)
	}
	return content, nil
}

func buildRequestBody(req port.CompletionRequest) ([]byte, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(req.UserPrompt))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(req.MaxTokens)
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}

	data, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal completion params: %w", err)
	}
	return data, nil
}

// statusError maps a non-2xx response to the gateway taxonomy.
func statusError(resp *port.HTTPResponse) *entity.GatewayError {
	apiMessage := gjson.GetBytes(resp.Body, "error.message").String()

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return withDetail(entity.KindAuth, resp.StatusCode, msgInvalidKey, apiMessage)
	case http.StatusTooManyRequests:
		return withDetail(entity.KindRateLimit, resp.StatusCode, msgRateLimited, apiMessage)
	case http.StatusBadRequest:
		if apiMessage == "" {
			apiMessage = msgBadRequest
		}
		return entity.NewGatewayError(entity.KindBadRequest, entity.ProviderOpenAI, resp.StatusCode, apiMessage)
	default:
		return withDetail(entity.KindProvider, resp.StatusCode,
			fmt.Sprintf("OpenAI API error: %d", resp.StatusCode), apiMessage)
	}
}

// withDetail keeps the provider's own message as the wrapped cause so it
// reaches the logs without replacing the user-facing text.
func withDetail(kind entity.ErrorKind, status int, msg, detail string) *entity.GatewayError {
	ge := entity.NewGatewayError(kind, entity.ProviderOpenAI, status, msg)
	if detail != "" {
		ge.Err = errors.New(detail)
	}
	return ge
}
