package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/domain/entity"
	"github.com/bnema/includs/internal/domain/validation"
	"github.com/bnema/includs/internal/logging"
)

const (
	explainUserPrefix  = "Please explain or simplify the following text:\n\n"
	explainMaxTokens   = 1000
	explainTemperature = 0.7
)

// ExplainTextUseCase sends text to the completion provider for a plain
// language explanation. It never returns an error: failures are carried in
// the result.
type ExplainTextUseCase struct {
	store      port.ConfigStore
	completion port.CompletionProvider
	defaults   ProviderDefaults
}

func NewExplainTextUseCase(store port.ConfigStore, completion port.CompletionProvider, defaults ProviderDefaults) *ExplainTextUseCase {
	return &ExplainTextUseCase{
		store:      store,
		completion: completion,
		defaults:   defaults,
	}
}

// ExplainText validates req.Text, loads the stored credential and makes a
// single completion call. There is no retry.
func (uc *ExplainTextUseCase) ExplainText(ctx context.Context, req entity.ExplainRequest) entity.ExplainResult {
	ctx = logging.WithProvider(ctx, string(entity.ProviderOpenAI))
	log := logging.FromContext(ctx)

	text, msg := validation.ExplainText(req.Text)
	if msg != "" {
		log.Debug().Str("reason", msg).Msg("explain request rejected")
		return failed(req.Source, entity.NewGatewayError(entity.KindValidation, entity.ProviderOpenAI, 0, msg))
	}

	cred, err := loadCredential(ctx, uc.store, entity.ProviderOpenAI, uc.defaults)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load OpenAI settings")
		cred.APIKey = ""
	}
	if !cred.HasKey() {
		return failed(req.Source, entity.NewGatewayError(entity.KindConfig, entity.ProviderOpenAI, 0,
			"OpenAI API key not configured. Run `includs keys set openai` to add one."))
	}

	requestID := uuid.NewString()
	ctx = logging.WithRequestID(ctx, requestID)
	log = logging.FromContext(ctx)

	log.Info().
		Str("model", cred.Model).
		Str("source", string(req.Source)).
		Int("chars", len([]rune(text))).
		Msg("sending explain request")

	temperature := explainTemperature
	explanation, err := uc.completion.Complete(ctx, port.CompletionRequest{
		Endpoint:     cred.Endpoint,
		APIKey:       cred.APIKey,
		Model:        cred.Model,
		SystemPrompt: uc.systemPrompt(ctx),
		UserPrompt:   explainUserPrefix + text,
		MaxTokens:    explainMaxTokens,
		Temperature:  &temperature,
	})
	if err != nil {
		ge := entity.AsGatewayError(err, entity.ProviderOpenAI)
		log.Warn().Str("kind", string(ge.Kind)).Int("status", ge.StatusCode).Err(ge).Msg("explain request failed")
		return failed(req.Source, ge)
	}

	log.Info().Int("chars", len(explanation)).Msg("explain request succeeded")
	return entity.ExplainResult{Explanation: explanation, Source: req.Source}
}

func (uc *ExplainTextUseCase) systemPrompt(ctx context.Context) string {
	values, err := uc.store.Get(ctx, port.ScopeSynced, KeyOpenAIPrompt)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("using default explain prompt")
		return entity.DefaultExplainPrompt
	}
	return stringOr(values, KeyOpenAIPrompt, entity.DefaultExplainPrompt)
}

func failed(src entity.TextSource, err *entity.GatewayError) entity.ExplainResult {
	return entity.ExplainResult{Source: src, Err: err}
}
