package utils

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/analytics-go/v3"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/grantscout/grantscout-backend/models"
)

// IdentityFromContext returns the caller identity decided by the authentication middleware, if any.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, found := ctx.Value(ContextKeyIdentity).(models.Identity)
	return identity, found
}

func StoreIdentityInContext(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, ContextKeyIdentity, identity)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	logger, found := ctx.Value(ContextKeyLogger).(*slog.Logger)
	if !found {
		return slog.Default()
	}
	return logger
}

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, logger)
}

func StoreLoggerInContextMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctxWithLogger := StoreLoggerInContext(c.Request.Context(), logger)
		c.Request = c.Request.WithContext(ctxWithLogger)
		c.Next()
	}
}

func SegmentClientFromContext(ctx context.Context) (analytics.Client, bool) {
	client, found := ctx.Value(ContextKeySegmentClient).(analytics.Client)
	return client, found
}

func StoreSegmentClientInContextMiddleware(client analytics.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client != nil {
			ctx := context.WithValue(c.Request.Context(), ContextKeySegmentClient, client)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

func OpenTelemetryTracerFromContext(ctx context.Context) trace.Tracer {
	tracer, found := ctx.Value(ContextKeyOpenTelemetryTracer).(trace.Tracer)
	if !found {
		return noop.Tracer{}
	}
	return tracer
}

func StoreOpenTelemetryTracerInContextMiddleware(tracer trace.Tracer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithValue(c.Request.Context(), ContextKeyOpenTelemetryTracer, tracer)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
