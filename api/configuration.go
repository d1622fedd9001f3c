package api

import (
	"time"

	"github.com/grantscout/grantscout-backend/api/middleware"
)

type Configuration struct {
	Env                 string
	AppName             string
	AppVersion          string
	Host                string
	Port                string
	FrontendUrl         string
	RequestLoggingLevel string
	MaxBodyBytes        int64
	EnablePrometheus    bool

	// Timeout applied to the routes calling the completion service.
	AiTimeout time.Duration

	RateLimits RateLimitConfiguration
}

type RateLimitConfiguration struct {
	Default []middleware.Limit
	Ai      []middleware.Limit
}

const DefaultMaxBodyBytes = 1 << 20
