package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grantscout/grantscout-backend/dto"
	"github.com/grantscout/grantscout-backend/usecases"
	"github.com/grantscout/grantscout-backend/utils"
)

func handleLivenessProbe(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		usecase := uc.NewLivenessUsecase()
		if err := usecase.Liveness(ctx); err != nil {
			utils.LoggerFromContext(ctx).ErrorContext(ctx, "liveness probe failed", "error", err.Error())
			c.JSON(http.StatusServiceUnavailable, gin.H{"mood": "Database unreachable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"mood": "Ready to dig",
		})
	}
}

func handleHealth(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		usecase := uc.NewHealthUsecase()
		status := usecase.GetHealthStatus(c.Request.Context())

		code := http.StatusOK
		if !status.IsHealthy() {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, dto.AdaptHealthStatus(status))
	}
}
