package repositories

import (
	"context"
	"net/http"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grantscout/grantscout-backend/models"
)

const openaiTestUrl = "http://openai.test/v1"

func chatCompletionReply(text string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1741944413,
		"model":   "gpt-test",
		"choices": []any{
			map[string]any{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": text},
			},
		},
	}
}

func TestLlmberjackCompletionRepository_Complete_sendsTokenLimit(t *testing.T) {
	defer gock.Off()

	gock.New(openaiTestUrl).
		Post("/chat/completions").
		BodyString(`"max_(completion_)?tokens":\s*500`).
		Reply(http.StatusOK).
		JSON(chatCompletionReply(`{"full_name": "Jane Doe"}`))

	repo, err := newLlmberjackCompletionRepository(CompletionConfig{
		Provider: CompletionProviderOpenAI,
		ApiKey:   "test-key",
		BaseUrl:  openaiTestUrl,
		Model:    "gpt-test",
	})
	require.NoError(t, err)

	text, err := repo.Complete(context.Background(), models.CompletionRequest{
		Instructions:    "You are a research assistant.",
		Prompt:          "Find information about Jane Doe from MIT.",
		MaxOutputTokens: 500,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"full_name": "Jane Doe"}`, text)
	assert.True(t, gock.IsDone())
}
