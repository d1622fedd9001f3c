package api

import (
	"github.com/gin-gonic/gin"

	"github.com/grantscout/grantscout-backend/models"
	"github.com/grantscout/grantscout-backend/utils"
)

type tokenValidator interface {
	ValidateToken(raw string) (models.Identity, error)
}

// NewAuthentication renders authentication failures with the API error envelope.
func NewAuthentication(validator tokenValidator) utils.Authentication {
	return utils.NewAuthentication(validator, func(c *gin.Context, err error) {
		presentError(c, err)
	})
}
