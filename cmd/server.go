package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
	"golang.org/x/sync/errgroup"

	"github.com/grantscout/grantscout-backend/api"
	"github.com/grantscout/grantscout-backend/infra"
	"github.com/grantscout/grantscout-backend/repositories"
	"github.com/grantscout/grantscout-backend/usecases"
	"github.com/grantscout/grantscout-backend/utils"
)

func RunServer() error {
	apiConfig := api.Configuration{
		Env:                 utils.GetEnv("ENV", "development"),
		AppName:             utils.GetEnv("APP_NAME", "grantscout-backend"),
		AppVersion:          apiVersion,
		Host:                utils.GetEnv("HOST", ""),
		Port:                utils.GetRequiredEnv[string]("PORT"),
		FrontendUrl:         utils.GetEnv("FRONTEND_URL", ""),
		RequestLoggingLevel: utils.GetEnv("REQUEST_LOGGING_LEVEL", "info"),
		MaxBodyBytes:        int64(utils.GetEnv("REQUEST_MAX_BODY_BYTES", api.DefaultMaxBodyBytes)),
		EnablePrometheus:    utils.GetEnv("ENABLE_PROMETHEUS", false),
		AiTimeout:           utils.GetEnv("AI_ROUTE_TIMEOUT", 55*time.Second),
	}
	pgConfig := pgConfigFromEnv()
	completionConfig := repositories.CompletionConfig{
		Provider:     repositories.CompletionProviderFrom(utils.GetEnv("LLM_PROVIDER", "openai")),
		ApiKey:       utils.GetEnv("LLM_API_KEY", ""),
		BaseUrl:      utils.GetEnv("LLM_BASE_URL", ""),
		Model:        utils.GetEnv("LLM_MODEL", ""),
		GoogleSearch: utils.GetEnv("LLM_GOOGLE_SEARCH", false),
		MaxAttempts:  uint(max(utils.GetEnv("LLM_MAX_ATTEMPTS", 1), 1)),
		RetryDelay:   utils.GetEnv("LLM_RETRY_DELAY", time.Second),
		Timeout:      utils.GetEnv("LLM_TIMEOUT", 50*time.Second),
	}
	tracingConfig := infra.TelemetryConfiguration{
		Enabled:         utils.GetEnv("ENABLE_TRACING", false),
		ApplicationName: apiConfig.AppName,
		ProjectID:       utils.GetEnv("GOOGLE_CLOUD_PROJECT", ""),
		Exporter:        utils.GetEnv("TRACING_EXPORTER", "otlp"),
	}
	serverConfig := ServerConfig{
		jwtSigningKey:       utils.GetEnv("AUTHENTICATION_JWT_SIGNING_KEY", ""),
		jwtSigningKeyFile:   utils.GetEnv("AUTHENTICATION_JWT_SIGNING_KEY_FILE", ""),
		tokenLifetimeMinute: utils.GetEnv("TOKEN_LIFETIME_MINUTE", 60*24),
		passwordHashCost:    utils.GetEnv("PASSWORD_HASH_COST", 0),
		loggingFormat:       utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:           utils.GetEnv("SENTRY_DSN", ""),
		segmentWriteKey:     utils.GetEnv("SEGMENT_WRITE_KEY", segmentWriteKey),
		maxOutputTokens:     utils.GetEnv("LLM_MAX_OUTPUT_TOKENS", usecases.DefaultMaxOutputTokens),
		rateLimitDefault:    utils.GetEnv("RATE_LIMIT_DEFAULT", "200 per day;50 per hour"),
		rateLimitAi:         utils.GetEnv("RATE_LIMIT_AI", "10 per minute"),
	}

	logger := utils.NewLogger(serverConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	if err := serverConfig.Validate(); err != nil {
		logger.ErrorContext(ctx, "invalid configuration", "error", err.Error())
		return err
	}
	rateLimits, err := serverConfig.rateLimits()
	if err != nil {
		logger.ErrorContext(ctx, "invalid rate limit configuration", "error", err.Error())
		return err
	}
	apiConfig.RateLimits = rateLimits

	signingKey, err := infra.ReadParseOrGenerateSigningKey(ctx, serverConfig.jwtSigningKey, serverConfig.jwtSigningKeyFile)
	if err != nil {
		logger.ErrorContext(ctx, "could not load the token signing key", "error", err.Error())
		return err
	}

	infra.SetupSentry(serverConfig.sentryDsn, apiConfig.Env, apiVersion)
	defer sentry.Flush(3 * time.Second)

	telemetryRessources, err := infra.InitTelemetry(ctx, tracingConfig, apiVersion)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		telemetryRessources = infra.NoopTelemetry()
	}

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(),
		telemetryRessources.TracerProvider, pgConfig.MaxPoolConnections)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}
	defer pool.Close()

	// Without a completion client the AI routes still answer, with degraded results.
	repositoryOptions := []repositories.Option{
		repositories.WithTokenValidity(time.Duration(serverConfig.tokenLifetimeMinute) * time.Minute),
		repositories.WithPasswordHashCost(serverConfig.passwordHashCost),
	}
	completionClient, err := repositories.NewCompletionClient(ctx, completionConfig)
	if err != nil {
		logger.WarnContext(ctx, "no completion service configured, verification and research will be degraded",
			"provider", string(completionConfig.Provider),
			"error", err.Error())
	} else {
		repositoryOptions = append(repositoryOptions, repositories.WithCompletionClient(completionClient))
	}

	repos := repositories.NewRepositories(pool, signingKey, repositoryOptions...)
	uc := usecases.NewUsecases(repos, usecases.WithMaxOutputTokens(serverConfig.maxOutputTokens))

	segmentClient := infra.NewSegmentClient(serverConfig.segmentWriteKey)
	router := api.InitRouterMiddlewares(ctx, apiConfig, segmentClient, telemetryRessources)
	server := api.NewServer(router, apiConfig, uc, api.NewAuthentication(repos.JwtRepository))

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(notify)
	group.Go(func() error {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port),
			slog.String("version", apiVersion))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "error while serving the app")
		}
		logger.InfoContext(ctx, "server returned")
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		shutdownErr := server.Shutdown(shutdownCtx)
		if err := segmentClient.Close(); err != nil {
			logger.WarnContext(ctx, "could not flush analytics events", "error", err.Error())
		}
		if err := telemetryRessources.Shutdown(shutdownCtx); err != nil {
			logger.WarnContext(ctx, "could not flush traces", "error", err.Error())
		}
		return errors.Wrap(shutdownErr, "error while shutting down the server")
	})

	if err := group.Wait(); err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}
	return nil
}
