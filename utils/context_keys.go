package utils

type ContextKey int

const (
	ContextKeyIdentity ContextKey = iota
	ContextKeyLogger
	ContextKeySegmentClient
	ContextKeyOpenTelemetryTracer
)
