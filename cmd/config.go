package cmd

import (
	"github.com/cockroachdb/errors"

	"github.com/grantscout/grantscout-backend/api"
	"github.com/grantscout/grantscout-backend/api/middleware"
	"github.com/grantscout/grantscout-backend/infra"
	"github.com/grantscout/grantscout-backend/utils"
)

// Set at build time with -ldflags.
var (
	apiVersion      = "dev"
	segmentWriteKey = ""
)

type ServerConfig struct {
	jwtSigningKey       string
	jwtSigningKeyFile   string
	tokenLifetimeMinute int
	passwordHashCost    int
	loggingFormat       string
	sentryDsn           string
	segmentWriteKey     string
	maxOutputTokens     int
	rateLimitDefault    string
	rateLimitAi         string
}

func (config ServerConfig) Validate() error {
	if config.tokenLifetimeMinute <= 0 {
		return errors.New("TOKEN_LIFETIME_MINUTE must be positive")
	}
	if config.maxOutputTokens <= 0 {
		return errors.New("LLM_MAX_OUTPUT_TOKENS must be positive")
	}
	return nil
}

func (config ServerConfig) rateLimits() (api.RateLimitConfiguration, error) {
	defaultLimits, err := middleware.ParseLimits(config.rateLimitDefault)
	if err != nil {
		return api.RateLimitConfiguration{}, errors.Wrap(err, "RATE_LIMIT_DEFAULT")
	}
	aiLimits, err := middleware.ParseLimits(config.rateLimitAi)
	if err != nil {
		return api.RateLimitConfiguration{}, errors.Wrap(err, "RATE_LIMIT_AI")
	}
	return api.RateLimitConfiguration{Default: defaultLimits, Ai: aiLimits}, nil
}

func pgConfigFromEnv() infra.PgConfig {
	return infra.PgConfig{
		ConnectionString:    utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:            utils.GetEnv("PG_DATABASE", "grantscout"),
		DbConnectWithSocket: utils.GetEnv("PG_CONNECT_WITH_SOCKET", false),
		Hostname:            utils.GetEnv("PG_HOSTNAME", ""),
		Password:            utils.GetEnv("PG_PASSWORD", ""),
		Port:                utils.GetEnv("PG_PORT", "5432"),
		User:                utils.GetEnv("PG_USER", ""),
		MaxPoolConnections:  utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
		SslMode:             utils.GetEnv("PG_SSL_MODE", "prefer"),
	}
}
