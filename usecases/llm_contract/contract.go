package llm_contract

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tidwall/gjson"

	"github.com/grantscout/grantscout-backend/utils"
)

// Contract turns a template and its parameters into a value of type T. It never returns an error: whatever
// happens to the completion, T is produced either by decode (usable payload) or by fallback.
type Contract[T any] struct {
	name            string
	completer       Completer
	maxOutputTokens int
	decode          func(ctx context.Context, payload gjson.Result) T
	fallback        func(ctx context.Context, malformed Extraction) T
}

func NewContract[T any](
	name string,
	completer Completer,
	maxOutputTokens int,
	decode func(ctx context.Context, payload gjson.Result) T,
	fallback func(ctx context.Context, malformed Extraction) T,
) Contract[T] {
	return Contract[T]{
		name:            name,
		completer:       completer,
		maxOutputTokens: maxOutputTokens,
		decode:          decode,
		fallback:        fallback,
	}
}

func (c Contract[T]) Run(ctx context.Context, tpl Template, params map[string]any) T {
	return c.Resolve(ctx, c.Extract(ctx, tpl, params))
}

func (c Contract[T]) Extract(ctx context.Context, tpl Template, params map[string]any) Extraction {
	logger := utils.LoggerFromContext(ctx)

	request, err := BuildRequest(tpl, params, c.maxOutputTokens)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return Malformed("", err.Error())
	}

	raw, ok := c.invoke(ctx, request)
	if !ok {
		return Malformed("", ReasonUnavailable)
	}

	extraction := Parse(raw)
	if !extraction.IsOk() {
		logger.WarnContext(ctx, "Unusable completion",
			"contract", c.name,
			"reason", extraction.Reason(),
			"raw_response", raw)
	}
	return extraction
}

func (c Contract[T]) Resolve(ctx context.Context, extraction Extraction) T {
	if extraction.IsOk() {
		return c.decode(ctx, extraction.Payload())
	}
	return c.fallback(ctx, extraction)
}

// invoke reports absence instead of errors.
func (c Contract[T]) invoke(ctx context.Context, request CompletionRequest) (string, bool) {
	logger := utils.LoggerFromContext(ctx)
	labels := prometheus.Labels{"contract": c.name}

	if c.completer == nil {
		logger.ErrorContext(ctx, "No completion service configured", "contract", c.name)
		utils.MetricCompletionFailures.With(labels).Inc()
		return "", false
	}

	start := time.Now()
	raw, err := c.completer.Complete(ctx, request)
	utils.MetricCompletionDuration.With(labels).Observe(time.Since(start).Seconds())
	if err != nil {
		logger.ErrorContext(ctx, "Completion service call failed",
			"contract", c.name,
			"error", err.Error())
		utils.MetricCompletionFailures.With(labels).Inc()
		return "", false
	}
	return raw, true
}
