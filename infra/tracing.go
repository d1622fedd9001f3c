package infra

import (
	"context"
	"encoding/binary"
	"math"
	"strings"

	texporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/trace"
	gcppropagator "github.com/GoogleCloudPlatform/opentelemetry-operations-go/propagator"
	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/detectors/gcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"google.golang.org/api/option"
)

type TelemetryRessources struct {
	TracerProvider    trace.TracerProvider
	Tracer            trace.Tracer
	TextMapPropagator propagation.TextMapPropagator
	shutdown          func(context.Context) error
}

func (r TelemetryRessources) Shutdown(ctx context.Context) error {
	if r.shutdown == nil {
		return nil
	}
	return r.shutdown(ctx)
}

func NoopTelemetry() TelemetryRessources {
	return TelemetryRessources{
		TracerProvider:    noop.NewTracerProvider(),
		Tracer:            noop.NewTracerProvider().Tracer(""),
		TextMapPropagator: propagation.NewCompositeTextMapPropagator(),
	}
}

func InitTelemetry(ctx context.Context, configuration TelemetryConfiguration, apiVersion string) (TelemetryRessources, error) {
	if !configuration.Enabled {
		return NoopTelemetry(), nil
	}

	var exporter sdktrace.SpanExporter

	switch configuration.Exporter {
	case "gcp":
		gcpExporter, err := texporter.New(
			// an empty project id falls back to the GCP metadata server
			texporter.WithProjectID(configuration.ProjectID),
			texporter.WithTraceClientOptions([]option.ClientOption{option.WithTelemetryDisabled()}),
		)
		if err != nil {
			return TelemetryRessources{}, errors.Wrap(err, "texporter.New error")
		}
		exporter = gcpExporter

	default: // "otlp"
		otlpExporter, err := otlptracegrpc.New(ctx)
		if err != nil {
			return TelemetryRessources{}, errors.Wrap(err, "otlptracegrpc.New error")
		}
		exporter = otlpExporter
	}

	res, err := resource.New(ctx,
		resource.WithDetectors(gcp.NewDetector()),
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(configuration.ApplicationName),
			semconv.ServiceVersion(apiVersion),
		),
	)
	if err != nil {
		return TelemetryRessources{}, errors.Wrap(err, "resource.New error")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(RouteSampler{SamplingMap: configuration.SamplingMap}),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	propagators := propagation.NewCompositeTextMapPropagator(
		gcppropagator.CloudTraceFormatPropagator{},
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagators)

	return TelemetryRessources{
		TracerProvider:    tp,
		Tracer:            tp.Tracer(configuration.ApplicationName),
		TextMapPropagator: propagators,
		shutdown:          tp.Shutdown,
	}, nil
}

const defaultSamplingRatio = 0.3

var (
	// spans opened by the usecases and the completion client
	spanNameRatios = map[string]float64{
		"VerificationUsecase.Verify":       1.0,
		"ResearchUsecase.GenerateResearch": 1.0,
		"pool.acquire":                     0.0,
	}

	routePrefixRatios = map[string]float64{
		"/health":       0.0,
		"/liveness":     0.0,
		"/metrics":      0.0,
		"/api/verify":   1.0,
		"/api/research": 1.0,
	}
)

// RouteSampler picks a sampling ratio from the http route, the database statement or the span name,
// then samples deterministically on the trace id.
type RouteSampler struct {
	SamplingMap TelemetrySamplingMap
}

func (RouteSampler) Description() string {
	return "route-sampler"
}

func (s RouteSampler) ShouldSample(p sdktrace.SamplingParameters) sdktrace.SamplingResult {
	parent := trace.SpanContextFromContext(p.ParentContext)
	if parent.HasTraceID() && !parent.IsSampled() {
		return sdktrace.NeverSample().ShouldSample(p)
	}

	decision := sdktrace.Drop
	if traceIdBelow(p.TraceID, s.ratio(p, parent)) {
		decision = sdktrace.RecordAndSample
	}
	return sdktrace.SamplingResult{
		Decision:   decision,
		Attributes: p.Attributes,
		Tracestate: parent.TraceState(),
	}
}

func (s RouteSampler) ratio(p sdktrace.SamplingParameters, parent trace.SpanContext) float64 {
	for _, attr := range p.Attributes {
		switch attr.Key {
		case semconv.HTTPRouteKey:
			route := attr.Value.AsString()
			if ratio, ok := longestPrefixRatio(s.SamplingMap.HttpRoutes, route); ok {
				return ratio
			}
			if ratio, ok := longestPrefixRatio(routePrefixRatios, route); ok {
				return ratio
			}
			return defaultSamplingRatio
		case semconv.DBQueryTextKey:
			if strings.HasPrefix(p.Name, "prepare ") || attr.Value.AsString() == "SELECT 1" {
				return 0
			}
			if parent.IsSampled() {
				return 1
			}
			return defaultSamplingRatio
		}
	}

	if ratio, ok := s.SamplingMap.SpanNames[p.Name]; ok {
		return ratio
	}
	if ratio, ok := spanNameRatios[p.Name]; ok {
		return ratio
	}
	return 1
}

func longestPrefixRatio(ratios map[string]float64, route string) (float64, bool) {
	best, found := "", false
	for prefix := range ratios {
		if strings.HasPrefix(route, prefix) && len(prefix) >= len(best) {
			best, found = prefix, true
		}
	}
	return ratios[best], found
}

func traceIdBelow(traceId trace.TraceID, ratio float64) bool {
	if ratio >= 1 {
		return true
	}
	return binary.BigEndian.Uint64(traceId[:8]) < uint64(ratio*float64(math.MaxUint64))
}
