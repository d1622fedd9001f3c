package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/grantscout/grantscout-backend/models"
)

type historyRepository interface {
	ListHistory(ctx context.Context, userId uuid.UUID) ([]models.HistorySummary, error)
	GetHistoryRecord(ctx context.Context, userId, historyId uuid.UUID) (models.HistoryRecord, error)
	DeleteHistoryRecord(ctx context.Context, userId, historyId uuid.UUID) error
}

// HistoryUsecase scopes every operation to the caller. Records of other users read as not found.
type HistoryUsecase struct {
	historyRepository historyRepository
}

func (u *HistoryUsecase) ListHistory(ctx context.Context, identity models.Identity) ([]models.HistorySummary, error) {
	return u.historyRepository.ListHistory(ctx, identity.UserId)
}

func (u *HistoryUsecase) GetHistoryRecord(ctx context.Context, identity models.Identity, historyId uuid.UUID) (models.HistoryRecord, error) {
	return u.historyRepository.GetHistoryRecord(ctx, identity.UserId, historyId)
}

func (u *HistoryUsecase) DeleteHistoryRecord(ctx context.Context, identity models.Identity, historyId uuid.UUID) error {
	return u.historyRepository.DeleteHistoryRecord(ctx, identity.UserId, historyId)
}
