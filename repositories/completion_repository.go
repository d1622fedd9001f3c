package repositories

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/grantscout/grantscout-backend/models"
	"github.com/grantscout/grantscout-backend/utils"
)

type CompletionProvider string

const (
	CompletionProviderGemini     CompletionProvider = "gemini"
	CompletionProviderOpenAI     CompletionProvider = "openai"
	CompletionProviderPerplexity CompletionProvider = "perplexity"
)

func CompletionProviderFrom(s string) CompletionProvider {
	switch CompletionProvider(strings.ToLower(strings.TrimSpace(s))) {
	case CompletionProviderGemini:
		return CompletionProviderGemini
	case CompletionProviderPerplexity:
		return CompletionProviderPerplexity
	default:
		return CompletionProviderOpenAI
	}
}

type CompletionConfig struct {
	Provider     CompletionProvider
	ApiKey       string
	BaseUrl      string
	Model        string
	GoogleSearch bool
	MaxAttempts  uint
	RetryDelay   time.Duration
	Timeout      time.Duration
}

// CompletionClient sends one prompt to the configured provider and returns its text.
type CompletionClient interface {
	Complete(ctx context.Context, request models.CompletionRequest) (string, error)
	Provider() CompletionProvider
}

func NewCompletionClient(ctx context.Context, config CompletionConfig) (CompletionClient, error) {
	if config.ApiKey == "" {
		return nil, errors.Newf("no api key configured for completion provider %s", config.Provider)
	}

	var (
		client CompletionClient
		err    error
	)
	switch config.Provider {
	case CompletionProviderGemini:
		httpClient := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
		client, err = NewGeminiCompletionRepository(ctx, config, httpClient)
	default:
		client, err = newLlmberjackCompletionRepository(config)
	}
	if err != nil {
		return nil, err
	}

	return retryingCompletionClient{
		CompletionClient: client,
		attempts:         max(config.MaxAttempts, 1),
		delay:            config.RetryDelay,
		timeout:          config.Timeout,
	}, nil
}

// retryingCompletionClient bounds each attempt by timeout and retries failed attempts.
type retryingCompletionClient struct {
	CompletionClient
	attempts uint
	delay    time.Duration
	timeout  time.Duration
}

func (c retryingCompletionClient) Complete(ctx context.Context, request models.CompletionRequest) (string, error) {
	return retry.DoWithData(
		func() (string, error) {
			attemptCtx := ctx
			if c.timeout > 0 {
				var cancel context.CancelFunc
				attemptCtx, cancel = context.WithTimeout(ctx, c.timeout)
				defer cancel()
			}
			return c.CompletionClient.Complete(attemptCtx, request)
		},
		retry.Attempts(c.attempts),
		retry.LastErrorOnly(true),
		retry.Delay(c.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			utils.LoggerFromContext(ctx).WarnContext(ctx, "completion attempt failed, retrying",
				"provider", c.Provider(),
				"attempt", n+1,
				"error", err.Error())
		}),
	)
}
