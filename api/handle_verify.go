package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/grantscout/grantscout-backend/dto"
	"github.com/grantscout/grantscout-backend/models"
	"github.com/grantscout/grantscout-backend/usecases"
)

func requireJson(c *gin.Context) bool {
	if c.ContentType() != binding.MIMEJSON {
		presentError(c, models.ErrRequestMustBeJson)
		return false
	}
	return true
}

// A failed verification is not an error of the usecase, but the route still answers with an error status:
// 400 when the service rejected the input, 422 otherwise with the degraded entity in the error field.
func handleVerifyEntity(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if !requireJson(c) {
			return
		}

		var input dto.VerifyInput
		if err := c.ShouldBindJSON(&input); presentError(c, err) {
			return
		}

		usecase := uc.NewVerificationUsecase()
		entity, err := usecase.Verify(ctx, dto.AdaptEntityQuery(ctx, input))
		if presentError(c, err) {
			return
		}

		switch {
		case entity.Verified():
			newResponse(dto.AdaptVerifiedEntityDto(entity)).Serve(c)
		case entity.IsInputRejection():
			newErrorResponse(entity.Error).Serve(c, http.StatusBadRequest)
		default:
			newErrorResponse(dto.AdaptVerifiedEntityDto(entity)).Serve(c, http.StatusUnprocessableEntity)
		}
	}
}
