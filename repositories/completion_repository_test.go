package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grantscout/grantscout-backend/models"
)

type flakyCompletionClient struct {
	failures int
	calls    int
}

func (c *flakyCompletionClient) Complete(ctx context.Context, request models.CompletionRequest) (string, error) {
	c.calls++
	if c.calls <= c.failures {
		return "", assert.AnError
	}
	return "answer", nil
}

func (c *flakyCompletionClient) Provider() CompletionProvider {
	return CompletionProviderGemini
}

func TestCompletionProviderFrom(t *testing.T) {
	assert.Equal(t, CompletionProviderOpenAI, CompletionProviderFrom("OpenAI"))
	assert.Equal(t, CompletionProviderPerplexity, CompletionProviderFrom(" perplexity "))
	assert.Equal(t, CompletionProviderGemini, CompletionProviderFrom("gemini"))
	assert.Equal(t, CompletionProviderOpenAI, CompletionProviderFrom(""))
	assert.Equal(t, CompletionProviderOpenAI, CompletionProviderFrom("unknown"))
}

func TestNewCompletionClient_RequiresApiKey(t *testing.T) {
	_, err := NewCompletionClient(context.Background(), CompletionConfig{Provider: CompletionProviderGemini})
	assert.Error(t, err)
}

func TestRetryingCompletionClient(t *testing.T) {
	t.Run("recovers after a transient failure", func(t *testing.T) {
		inner := &flakyCompletionClient{failures: 1}
		client := retryingCompletionClient{CompletionClient: inner, attempts: 3}

		text, err := client.Complete(context.Background(), models.CompletionRequest{Prompt: "p"})
		require.NoError(t, err)
		assert.Equal(t, "answer", text)
		assert.Equal(t, 2, inner.calls)
	})

	t.Run("gives up after the last attempt", func(t *testing.T) {
		inner := &flakyCompletionClient{failures: 5}
		client := retryingCompletionClient{CompletionClient: inner, attempts: 2}

		_, err := client.Complete(context.Background(), models.CompletionRequest{Prompt: "p"})
		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 2, inner.calls)
	})

	t.Run("each attempt is bounded by the timeout", func(t *testing.T) {
		inner := &slowCompletionClient{}
		client := retryingCompletionClient{CompletionClient: inner, attempts: 1, timeout: 10 * time.Millisecond}

		_, err := client.Complete(context.Background(), models.CompletionRequest{Prompt: "p"})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

type slowCompletionClient struct{}

func (slowCompletionClient) Complete(ctx context.Context, request models.CompletionRequest) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func (slowCompletionClient) Provider() CompletionProvider {
	return CompletionProviderGemini
}
