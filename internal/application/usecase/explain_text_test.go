package usecase_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/bnema/includs/internal/application/port"
	portmocks "github.com/bnema/includs/internal/application/port/mocks"
	"github.com/bnema/includs/internal/application/usecase"
	"github.com/bnema/includs/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExplainText_ValidationFailsBeforeAnyIO(t *testing.T) {
	ctx := testContext()
	store := portmocks.NewMockConfigStore(t)
	completion := portmocks.NewMockCompletionProvider(t)
	uc := usecase.NewExplainTextUseCase(store, completion, usecase.ProviderDefaults{})

	tests := []struct {
		name    string
		text    string
		message string
	}{
		{"empty", "", "No text provided"},
		{"too short", "hi", "Text is too short. Please select more text."},
		{"too long", strings.Repeat("x", 5001), "Text is too long (5001 chars). Maximum is 5000 characters."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := uc.ExplainText(ctx, entity.ExplainRequest{Text: tt.text, Source: entity.SourceSelection})
			require.False(t, res.OK())
			assert.ErrorIs(t, res.Err, entity.ErrValidation)
			assert.Equal(t, tt.message, res.Err.Message)
			assert.Equal(t, entity.SourceSelection, res.Source)
		})
	}
}

func TestExplainText_MissingKeyIsConfigError(t *testing.T) {
	ctx := testContext()
	completion := portmocks.NewMockCompletionProvider(t)
	uc := usecase.NewExplainTextUseCase(newMemStore(), completion, usecase.ProviderDefaults{})

	res := uc.ExplainText(ctx, entity.ExplainRequest{Text: "A sufficiently long passage."})
	require.False(t, res.OK())
	assert.ErrorIs(t, res.Err, entity.ErrConfig)
}

func TestExplainText_StorageErrorIsConfigError(t *testing.T) {
	ctx := testContext()
	store := portmocks.NewMockConfigStore(t)
	store.EXPECT().Get(mock.Anything, port.ScopeLocal, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("locked"))

	uc := usecase.NewExplainTextUseCase(store, portmocks.NewMockCompletionProvider(t), usecase.ProviderDefaults{})

	res := uc.ExplainText(ctx, entity.ExplainRequest{Text: "A sufficiently long passage."})
	assert.ErrorIs(t, res.Err, entity.ErrConfig)
}

func TestExplainText_SendsSingleRequest(t *testing.T) {
	ctx := testContext()
	store := newMemStore()
	store.put(port.ScopeLocal, "openaiApiKey", `"sk-test"`)
	store.put(port.ScopeLocal, "openaiModel", `"gpt-4.1-mini"`)

	completion := portmocks.NewMockCompletionProvider(t)
	completion.EXPECT().Complete(mock.Anything, mock.MatchedBy(func(req port.CompletionRequest) bool {
		return req.Endpoint == "https://llm.internal/v1/chat/completions" &&
			req.APIKey == "sk-test" &&
			req.Model == "gpt-4.1-mini" &&
			req.SystemPrompt == entity.DefaultExplainPrompt &&
			req.UserPrompt == "Please explain or simplify the following text:\n\nThe mitochondria is the powerhouse." &&
			req.MaxTokens == 1000 &&
			req.Temperature != nil && *req.Temperature == 0.7
	})).Return("It makes energy for the cell.", nil).Once()

	uc := usecase.NewExplainTextUseCase(store, completion, usecase.ProviderDefaults{
		OpenAIEndpoint: "https://llm.internal/v1/chat/completions",
	})

	res := uc.ExplainText(ctx, entity.ExplainRequest{
		Text:   "  The mitochondria is the powerhouse.  ",
		Source: entity.SourceParagraph,
	})
	require.True(t, res.OK())
	assert.Equal(t, "It makes energy for the cell.", res.Explanation)
	assert.Equal(t, entity.SourceParagraph, res.Source)
}

func TestExplainText_UsesStoredPrompt(t *testing.T) {
	ctx := testContext()
	store := newMemStore()
	store.put(port.ScopeLocal, "openaiApiKey", `"sk-test"`)
	store.put(port.ScopeSynced, "openaiPrompt", `"Answer like a pirate."`)

	completion := portmocks.NewMockCompletionProvider(t)
	completion.EXPECT().Complete(mock.Anything, mock.MatchedBy(func(req port.CompletionRequest) bool {
		return req.SystemPrompt == "Answer like a pirate." &&
			req.Endpoint == entity.DefaultOpenAIEndpoint &&
			req.Model == entity.DefaultOpenAIModel
	})).Return("Arr.", nil)

	res := usecase.NewExplainTextUseCase(store, completion, usecase.ProviderDefaults{}).
		ExplainText(ctx, entity.ExplainRequest{Text: "Some text to explain here."})
	assert.True(t, res.OK())
}

func TestExplainText_ProviderErrorsPassThrough(t *testing.T) {
	ctx := testContext()
	store := newMemStore()
	store.put(port.ScopeLocal, "openaiApiKey", `"sk-test"`)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"auth", entity.NewGatewayError(entity.KindAuth, entity.ProviderOpenAI, 401, "bad key"), entity.ErrAuth},
		{"rate limit", entity.NewGatewayError(entity.KindRateLimit, entity.ProviderOpenAI, 429, "slow down"), entity.ErrRateLimit},
		{"network", entity.NewGatewayError(entity.KindNetwork, entity.ProviderOpenAI, 0, "offline"), entity.ErrNetwork},
		{"foreign error becomes provider error", errors.New("unexpected"), entity.ErrProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completion := portmocks.NewMockCompletionProvider(t)
			completion.EXPECT().Complete(mock.Anything, mock.Anything).Return("", tt.err).Once()

			res := usecase.NewExplainTextUseCase(store, completion, usecase.ProviderDefaults{}).
				ExplainText(ctx, entity.ExplainRequest{Text: "Long enough to be explained."})
			require.False(t, res.OK())
			assert.ErrorIs(t, res.Err, tt.want)
			assert.Empty(t, res.Explanation)
		})
	}
}
