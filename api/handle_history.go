package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/grantscout/grantscout-backend/dto"
	"github.com/grantscout/grantscout-backend/models"
	"github.com/grantscout/grantscout-backend/pure_utils"
	"github.com/grantscout/grantscout-backend/usecases"
)

func historyIdParam(c *gin.Context) (uuid.UUID, bool) {
	historyId, err := uuid.Parse(c.Param("history_id"))
	if err != nil {
		presentError(c, models.ErrInvalidHistoryId)
		return uuid.Nil, false
	}
	return historyId, true
}

func handleListHistory(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		identity, ok := identityOrAbort(c)
		if !ok {
			return
		}

		usecase := uc.NewHistoryUsecase()
		summaries, err := usecase.ListHistory(c.Request.Context(), identity)
		if presentError(c, err) {
			return
		}

		newResponse(gin.H{
			"history": pure_utils.Map(summaries, dto.AdaptHistorySummaryDto),
		}).Serve(c)
	}
}

func handleGetHistoryRecord(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		identity, ok := identityOrAbort(c)
		if !ok {
			return
		}
		historyId, ok := historyIdParam(c)
		if !ok {
			return
		}

		usecase := uc.NewHistoryUsecase()
		record, err := usecase.GetHistoryRecord(c.Request.Context(), identity, historyId)
		if presentError(c, err) {
			return
		}

		newResponse(gin.H{"history_item": dto.AdaptHistoryRecordDto(record)}).Serve(c)
	}
}

func handleDeleteHistoryRecord(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		identity, ok := identityOrAbort(c)
		if !ok {
			return
		}
		historyId, ok := historyIdParam(c)
		if !ok {
			return
		}

		usecase := uc.NewHistoryUsecase()
		err := usecase.DeleteHistoryRecord(c.Request.Context(), identity, historyId)
		if presentError(c, err) {
			return
		}

		newResponse(gin.H{"message": "History item deleted"}).Serve(c)
	}
}
