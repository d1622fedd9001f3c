package repositories

import (
	"context"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"google.golang.org/genai"

	"github.com/grantscout/grantscout-backend/models"
)

const defaultGeminiModel = "gemini-2.5-flash"

type GeminiCompletionRepository struct {
	client       *genai.Client
	model        string
	googleSearch bool
}

// NewGeminiCompletionRepository talks to the Gemini API. httpClient may be nil.
func NewGeminiCompletionRepository(ctx context.Context, config CompletionConfig, httpClient *http.Client) (*GeminiCompletionRepository, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:     config.ApiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if config.BaseUrl != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseUrl}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create genai client")
	}

	model := config.Model
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiCompletionRepository{
		client:       client,
		model:        model,
		googleSearch: config.GoogleSearch,
	}, nil
}

func (r *GeminiCompletionRepository) Provider() CompletionProvider {
	return CompletionProviderGemini
}

func (r *GeminiCompletionRepository) Complete(ctx context.Context, request models.CompletionRequest) (string, error) {
	config := &genai.GenerateContentConfig{}
	if request.Instructions != "" {
		config.SystemInstruction = genai.NewContentFromText(request.Instructions, "")
	}
	if request.MaxOutputTokens > 0 {
		config.MaxOutputTokens = int32(request.MaxOutputTokens)
	}
	if r.googleSearch {
		config.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	resp, err := r.client.Models.GenerateContent(ctx, r.model, genai.Text(request.Prompt), config)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate content")
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("completion service returned no text")
	}
	return text, nil
}
