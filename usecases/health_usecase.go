package usecases

import (
	"context"

	"github.com/grantscout/grantscout-backend/models"
)

type HealthUsecase struct {
	livenessRepository   livenessRepository
	completionConfigured bool
}

func (u *HealthUsecase) GetHealthStatus(ctx context.Context) models.HealthStatus {
	statuses := []models.HealthItemStatus{}

	err := u.livenessRepository.Liveness(ctx)
	statuses = append(statuses, models.HealthItemStatus{
		Name:   models.DatabaseHealthItemName,
		Status: err == nil,
	})

	statuses = append(statuses, models.HealthItemStatus{
		Name:   models.CompletionHealthItemName,
		Status: u.completionConfigured,
	})

	return models.HealthStatus{
		Statuses: statuses,
	}
}
