package api

import (
	"github.com/gin-gonic/gin"

	"github.com/grantscout/grantscout-backend/dto"
	"github.com/grantscout/grantscout-backend/models"
	"github.com/grantscout/grantscout-backend/usecases"
	"github.com/grantscout/grantscout-backend/utils"
)

func handleGenerateResearch(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if !requireJson(c) {
			return
		}

		var input dto.ResearchInput
		if err := c.ShouldBindJSON(&input); presentError(c, err) {
			return
		}
		request, err := dto.AdaptResearchRequest(ctx, input)
		if presentError(c, err) {
			return
		}

		var identity *models.Identity
		if id, ok := utils.IdentityFromContext(ctx); ok {
			identity = &id
		}

		usecase := uc.NewResearchUsecase()
		result, err := usecase.GenerateResearch(ctx, request, identity)
		if presentError(c, err) {
			return
		}

		newResponse(dto.AdaptResearchResultDto(result)).Serve(c)
	}
}
