package infra

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"
)

func samplingParams(name string, attrs ...attribute.KeyValue) sdktrace.SamplingParameters {
	return sdktrace.SamplingParameters{
		ParentContext: context.Background(),
		TraceID:       trace.TraceID{0x10, 0, 0, 0, 0, 0, 0, 1},
		Name:          name,
		Attributes:    attrs,
	}
}

func TestRouteSampler(t *testing.T) {
	sampler := RouteSampler{}

	t.Run("probes are dropped", func(t *testing.T) {
		result := sampler.ShouldSample(samplingParams("GET /liveness", semconv.HTTPRouteKey.String("/liveness")))
		assert.Equal(t, sdktrace.Drop, result.Decision)
	})

	t.Run("ai routes are kept", func(t *testing.T) {
		result := sampler.ShouldSample(samplingParams("POST /api/research", semconv.HTTPRouteKey.String("/api/research")))
		assert.Equal(t, sdktrace.RecordAndSample, result.Decision)
	})

	t.Run("configured override", func(t *testing.T) {
		sampler := RouteSampler{SamplingMap: TelemetrySamplingMap{
			HttpRoutes: map[string]float64{"/api/research": 0.0},
		}}
		result := sampler.ShouldSample(samplingParams("POST /api/research", semconv.HTTPRouteKey.String("/api/research")))
		assert.Equal(t, sdktrace.Drop, result.Decision)
	})

	t.Run("pool acquire is dropped", func(t *testing.T) {
		assert.Equal(t, sdktrace.Drop, sampler.ShouldSample(samplingParams("pool.acquire")).Decision)
	})

	t.Run("unsampled parent", func(t *testing.T) {
		parent := trace.NewSpanContext(trace.SpanContextConfig{
			TraceID: trace.TraceID{1},
			SpanID:  trace.SpanID{1},
		})
		params := samplingParams("child")
		params.ParentContext = trace.ContextWithSpanContext(context.Background(), parent)
		assert.Equal(t, sdktrace.Drop, sampler.ShouldSample(params).Decision)
	})
}

func TestRouteSampler_longestPrefixWins(t *testing.T) {
	sampler := RouteSampler{SamplingMap: TelemetrySamplingMap{
		HttpRoutes: map[string]float64{"/api": 0.0, "/api/verify": 1.0},
	}}
	result := sampler.ShouldSample(samplingParams("POST /api/verify", semconv.HTTPRouteKey.String("/api/verify")))
	assert.Equal(t, sdktrace.RecordAndSample, result.Decision)

	result = sampler.ShouldSample(samplingParams("GET /api/history", semconv.HTTPRouteKey.String("/api/history")))
	assert.Equal(t, sdktrace.Drop, result.Decision)
}
