package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/grantscout/grantscout-backend/models"
)

type HistoryRepository struct {
	mock.Mock
}

func (m *HistoryRepository) AppendHistory(ctx context.Context, record models.CreateHistoryRecord) (uuid.UUID, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *HistoryRepository) ListHistory(ctx context.Context, userId uuid.UUID) ([]models.HistorySummary, error) {
	args := m.Called(ctx, userId)
	return args.Get(0).([]models.HistorySummary), args.Error(1)
}

func (m *HistoryRepository) GetHistoryRecord(ctx context.Context, userId, historyId uuid.UUID) (models.HistoryRecord, error) {
	args := m.Called(ctx, userId, historyId)
	return args.Get(0).(models.HistoryRecord), args.Error(1)
}

func (m *HistoryRepository) DeleteHistoryRecord(ctx context.Context, userId, historyId uuid.UUID) error {
	args := m.Called(ctx, userId, historyId)
	return args.Error(0)
}
