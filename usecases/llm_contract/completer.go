package llm_contract

import (
	"context"

	"github.com/grantscout/grantscout-backend/models"
)

type CompletionRequest = models.CompletionRequest

// Completer is the external completion service: prompt in, free text out.
type Completer interface {
	Complete(ctx context.Context, request CompletionRequest) (string, error)
}

type CompleterFunc func(ctx context.Context, request CompletionRequest) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, request CompletionRequest) (string, error) {
	return f(ctx, request)
}
