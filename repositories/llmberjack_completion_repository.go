package repositories

import (
	"context"

	"github.com/checkmarble/llmberjack"
	"github.com/checkmarble/llmberjack/llms/openai"
	"github.com/checkmarble/llmberjack/llms/perplexity"
	"github.com/cockroachdb/errors"

	"github.com/grantscout/grantscout-backend/models"
)

const (
	defaultOpenAIModel     = "gpt-4o-search-preview"
	defaultPerplexityModel = "sonar"
)

// LlmberjackCompletionRepository serves the OpenAI compatible providers.
type LlmberjackCompletionRepository struct {
	adapter  *llmberjack.Llmberjack
	provider CompletionProvider
}

func newLlmberjackCompletionRepository(config CompletionConfig) (*LlmberjackCompletionRepository, error) {
	opts := []openai.Opt{openai.WithApiKey(config.ApiKey)}
	if config.BaseUrl != "" {
		opts = append(opts, openai.WithBaseUrl(config.BaseUrl))
	}

	var (
		provider     llmberjack.Llm
		defaultModel string
		err          error
	)
	switch config.Provider {
	case CompletionProviderPerplexity:
		provider, err = perplexity.New(opts...)
		defaultModel = defaultPerplexityModel
	default:
		provider, err = openai.New(opts...)
		defaultModel = defaultOpenAIModel
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s provider", config.Provider)
	}

	model := config.Model
	if model == "" {
		model = defaultModel
	}
	adapter, err := llmberjack.New(
		llmberjack.WithProvider(string(config.Provider), provider),
		llmberjack.WithDefaultModel(model),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create LLM adapter")
	}

	return &LlmberjackCompletionRepository{
		adapter:  adapter,
		provider: config.Provider,
	}, nil
}

func (r *LlmberjackCompletionRepository) Provider() CompletionProvider {
	return r.provider
}

func (r *LlmberjackCompletionRepository) Complete(ctx context.Context, request models.CompletionRequest) (string, error) {
	req := llmberjack.NewUntypedRequest().
		WithThinking(false).
		WithText(llmberjack.RoleUser, request.Prompt)
	if request.Instructions != "" {
		req = req.WithInstruction(request.Instructions)
	}
	if request.MaxOutputTokens > 0 {
		req = req.WithMaxTokens(request.MaxOutputTokens)
	}

	resp, err := req.Do(ctx, r.adapter)
	if err != nil {
		return "", errors.Wrap(err, "failed to make completion request")
	}

	text, err := resp.Get(0)
	if err != nil {
		return "", errors.Wrap(err, "failed to read completion response")
	}
	return text, nil
}
