// Package elevenlabs lists the voices an ElevenLabs key can use.
package elevenlabs

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/domain/entity"
	"github.com/bnema/includs/internal/logging"
	"github.com/tidwall/gjson"
)

const (
	voicesPath        = "/v1/voices"
	apiKeyHeader      = "xi-api-key"
	msgDefaultFailure = "Invalid key or missing permissions"
)

// Provider implements port.VoiceProvider.
type Provider struct {
	http    port.HTTPClient
	baseURL string
}

var _ port.VoiceProvider = (*Provider)(nil)

// NewProvider returns a provider for baseURL, the API default when empty.
func NewProvider(client port.HTTPClient, baseURL string) *Provider {
	if baseURL == "" {
		baseURL = entity.DefaultElevenLabsBaseURL
	}
	return &Provider{http: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// ListVoices calls GET /v1/voices with apiKey.
func (p *Provider) ListVoices(ctx context.Context, apiKey string) ([]entity.Voice, error) {
	log := logging.FromContext(ctx)

	resp, err := p.http.Get(ctx, p.baseURL+voicesPath, map[string]string{
		"Accept":     "application/json",
		apiKeyHeader: apiKey,
	})
	if err != nil {
		return nil, &entity.GatewayError{
			Kind:     entity.KindNetwork,
			Provider: entity.ProviderElevenLabs,
			Message:  "Could not connect to ElevenLabs: " + err.Error(),
			Err:      err,
		}
	}

	if !resp.IsSuccess() {
		ge := statusError(resp)
		log.Debug().Int("status", resp.StatusCode).Str("body", truncate(string(resp.Body), 200)).Msg("voices request rejected")
		return nil, ge
	}

	if !gjson.ValidBytes(resp.Body) {
		return nil, entity.NewGatewayError(entity.KindProvider, entity.ProviderElevenLabs, resp.StatusCode,
			"ElevenLabs returned an unreadable voice list")
	}

	voices := parseVoices(resp.Body)
	log.Debug().Int("voices", len(voices)).Msg("voices listed")
	return voices, nil
}

func parseVoices(body []byte) []entity.Voice {
	var voices []entity.Voice
	gjson.GetBytes(body, "voices").ForEach(func(_, v gjson.Result) bool {
		voices = append(voices, entity.Voice{
			ID:         v.Get("voice_id").String(),
			Name:       v.Get("name").String(),
			PreviewURL: v.Get("preview_url").String(),
		})
		return true
	})
	if voices == nil {
		voices = []entity.Voice{}
	}
	return voices
}

func statusError(resp *port.HTTPResponse) *entity.GatewayError {
	msg := fmt.Sprintf("ElevenLabs error (%d)", resp.StatusCode)
	if gjson.ValidBytes(resp.Body) {
		msg = "ElevenLabs: " + detailMessage(resp.Body)
	}

	kind := entity.KindProvider
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		kind = entity.KindAuth
	case http.StatusTooManyRequests:
		kind = entity.KindRateLimit
	case http.StatusBadRequest:
		kind = entity.KindBadRequest
	}
	return entity.NewGatewayError(kind, entity.ProviderElevenLabs, resp.StatusCode, msg)
}

// detailMessage reads detail.message, then a string detail.
func detailMessage(body []byte) string {
	if m := gjson.GetBytes(body, "detail.message").String(); m != "" {
		return m
	}
	if d := gjson.GetBytes(body, "detail"); d.Type == gjson.String && d.String() != "" {
		return d.String()
	}
	return msgDefaultFailure
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
