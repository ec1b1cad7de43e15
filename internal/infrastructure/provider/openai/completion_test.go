package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/application/port/mocks"
	"github.com/bnema/includs/internal/domain/entity"
	"github.com/bnema/includs/internal/infrastructure/httpclient"
	"github.com/bnema/includs/internal/infrastructure/provider/openai"
	"github.com/bnema/includs/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func explainRequest(endpoint string) port.CompletionRequest {
	temp := 0.7
	return port.CompletionRequest{
		Endpoint:     endpoint,
		APIKey:       "sk-test",
		Model:        "gpt-4o-mini",
		SystemPrompt: "be simple",
		UserPrompt:   "Please explain or simplify the following text:\n\nhello world",
		MaxTokens:    1000,
		Temperature:  &temp,
	}
}

func TestComplete_RequestShapeAndSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))

		assert.Equal(t, "gpt-4o-mini", body["model"])
		assert.InDelta(t, 0.7, body["temperature"], 1e-9)
		assert.InDelta(t, 1000, body["max_tokens"], 1e-9)
		msgs := body["messages"].([]any)
		require.Len(t, msgs, 2)
		assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
		assert.Equal(t, "be simple", msgs[0].(map[string]any)["content"])
		assert.Equal(t, "user", msgs[1].(map[string]any)["role"])

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"It says hi."}}]}`))
	}))
	defer srv.Close()

	p := openai.NewProvider(httpclient.New(0, ""))
	got, err := p.Complete(testCtx(), explainRequest(srv.URL))
	require.NoError(t, err)
	assert.Equal(t, "It says hi.", got)
}

func TestComplete_ProbeOmitsOptionalFields(t *testing.T) {
	client := mocks.NewMockHTTPClient(t)
	client.EXPECT().
		Post(mock.Anything, entity.DefaultOpenAIEndpoint, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ map[string]string, body []byte) (*port.HTTPResponse, error) {
			var m map[string]any
			require.NoError(t, json.Unmarshal(body, &m))
			assert.NotContains(t, m, "temperature")
			assert.InDelta(t, 5, m["max_tokens"], 1e-9)
			assert.Len(t, m["messages"], 1)
			return &port.HTTPResponse{StatusCode: 200, Body: []byte(`{"choices":[{"message":{"content":"Hello"}}]}`)}, nil
		})

	_, err := openai.NewProvider(client).Complete(testCtx(), port.CompletionRequest{
		Endpoint:   entity.DefaultOpenAIEndpoint,
		APIKey:     "sk-test",
		Model:      "gpt-4o-mini",
		UserPrompt: "Hi",
		MaxTokens:  5,
	})
	require.NoError(t, err)
}

func TestComplete_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		kind    entity.ErrorKind
		message string
	}{
		{"unauthorized", 401, `{"error":{"message":"Incorrect API key"}}`, entity.KindAuth,
			"Invalid OpenAI API key. Please check your key with `includs keys test openai`."},
		{"rate limited", 429, `{}`, entity.KindRateLimit, "Rate limit exceeded. Please try again later."},
		{"bad request with message", 400, `{"error":{"message":"model not found"}}`, entity.KindBadRequest, "model not found"},
		{"bad request without body", 400, `not json`, entity.KindBadRequest, "Invalid request to OpenAI."},
		{"server error", 503, ``, entity.KindProvider, "OpenAI API error: 503"},
		{"empty content", 200, `{"choices":[]}`, entity.KindProvider, "No response from OpenAI"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewMockHTTPClient(t)
			client.EXPECT().Post(mock.Anything, "https://llm.example/v1/chat", mock.Anything, mock.Anything).
				Return(&port.HTTPResponse{StatusCode: tt.status, Body: []byte(tt.body)}, nil).Once()

			_, err := openai.NewProvider(client).Complete(testCtx(), explainRequest("https://llm.example/v1/chat"))
			require.Error(t, err)

			var ge *entity.GatewayError
			require.ErrorAs(t, err, &ge)
			assert.Equal(t, tt.kind, ge.Kind)
			assert.Equal(t, tt.message, ge.Message)
			assert.Equal(t, tt.status, ge.StatusCode)
		})
	}
}

func TestComplete_TransportFailureIsNetworkError(t *testing.T) {
	client := mocks.NewMockHTTPClient(t)
	client.EXPECT().Post(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("dial tcp: connection refused")).Once()

	_, err := openai.NewProvider(client).Complete(testCtx(), explainRequest("https://llm.example/v1/chat"))
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrNetwork)
	assert.Equal(t, "Network error. Please check your internet connection.", err.Error())
}
