package api

import (
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/grantscout/grantscout-backend/usecases"
	"github.com/grantscout/grantscout-backend/utils"
)

const minServerTimeout = 30 * time.Second

// NewServer mounts the routes on the router and wraps it in an h2c-capable http server.
// Connection timeouts stay above the AI route timeout so that the timeout response can still be written.
func NewServer(router *gin.Engine, conf Configuration, uc usecases.Usecases, auth utils.Authentication) *http.Server {
	addRoutes(router, conf, uc, auth)

	host := conf.Host
	if host == "" {
		host = "0.0.0.0"
	}
	connectionTimeout := max(conf.AiTimeout, minServerTimeout) + 5*time.Second

	return &http.Server{
		Addr:              net.JoinHostPort(host, conf.Port),
		Handler:           h2c.NewHandler(router, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       connectionTimeout,
		WriteTimeout:      connectionTimeout,
		IdleTimeout:       connectionTimeout,
	}
}
