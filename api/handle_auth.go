package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grantscout/grantscout-backend/dto"
	"github.com/grantscout/grantscout-backend/models"
	"github.com/grantscout/grantscout-backend/usecases"
	"github.com/grantscout/grantscout-backend/utils"
)

func handleRegister(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		if !requireJson(c) {
			return
		}

		var input dto.RegisterInput
		if err := c.ShouldBindJSON(&input); presentError(c, err) {
			return
		}

		usecase := uc.NewUserUsecase()
		authenticated, err := usecase.Register(c.Request.Context(), dto.AdaptRegistration(input))
		if presentError(c, err) {
			return
		}

		newResponse(dto.AdaptAuthenticatedUserDto(authenticated)).Serve(c, http.StatusCreated)
	}
}

func handleLogin(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		if !requireJson(c) {
			return
		}

		var input dto.LoginInput
		if err := c.ShouldBindJSON(&input); presentError(c, err) {
			return
		}

		usecase := uc.NewUserUsecase()
		authenticated, err := usecase.Login(c.Request.Context(), dto.AdaptLoginAttempt(input))
		if presentError(c, err) {
			return
		}

		newResponse(dto.AdaptAuthenticatedUserDto(authenticated)).Serve(c)
	}
}

// identityOrAbort is only needed on routes behind the required authentication middleware.
func identityOrAbort(c *gin.Context) (models.Identity, bool) {
	identity, ok := utils.IdentityFromContext(c.Request.Context())
	if !ok {
		presentError(c, models.ErrMissingToken)
	}
	return identity, ok
}

func handleGetMe(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		identity, ok := identityOrAbort(c)
		if !ok {
			return
		}

		usecase := uc.NewUserUsecase()
		user, err := usecase.Me(c.Request.Context(), identity)
		if presentError(c, err) {
			return
		}

		newResponse(gin.H{"user": dto.AdaptUserProfileDto(user)}).Serve(c)
	}
}
