package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	timeout "github.com/vearne/gin-timeout"

	"github.com/grantscout/grantscout-backend/api/middleware"
	"github.com/grantscout/grantscout-backend/usecases"
	"github.com/grantscout/grantscout-backend/utils"
)

func timeoutMiddleware(duration time.Duration) gin.HandlerFunc {
	if duration <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return timeout.Timeout(
		timeout.WithTimeout(duration),
		timeout.WithErrorHttpCode(http.StatusRequestTimeout),
		timeout.WithDefaultMsg(`{"success":false,"error":"Request timeout"}`),
	)
}

func rateLimiter(name string, limits []middleware.Limit) gin.HandlerFunc {
	return middleware.NewRateLimiter(name, limits,
		middleware.WithLimitExceededHandler(presentLimitExceeded))
}

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases, auth utils.Authentication) {
	r.GET("/", handleIndex(conf))
	r.GET("/liveness", handleLivenessProbe(uc))
	r.GET("/health", handleHealth(uc))
	if conf.EnablePrometheus {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	router := r.Group("/api", rateLimiter("default", conf.RateLimits.Default))

	router.POST("/verify",
		rateLimiter("verify", conf.RateLimits.Ai),
		timeoutMiddleware(conf.AiTimeout),
		handleVerifyEntity(uc))
	router.POST("/research",
		rateLimiter("research", conf.RateLimits.Ai),
		auth.Optional,
		timeoutMiddleware(conf.AiTimeout),
		handleGenerateResearch(uc))

	router.POST("/auth/register", handleRegister(uc))
	router.POST("/auth/login", handleLogin(uc))
	router.GET("/auth/me", auth.Required, handleGetMe(uc))

	history := router.Group("/history", auth.Required)
	history.GET("", handleListHistory(uc))
	history.GET("/:history_id", handleGetHistoryRecord(uc))
	history.DELETE("/:history_id", handleDeleteHistoryRecord(uc))
}
