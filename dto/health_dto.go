package dto

import (
	"github.com/grantscout/grantscout-backend/models"
	"github.com/grantscout/grantscout-backend/pure_utils"
)

type HealthItemStatus struct {
	Name   string `json:"name"`
	Status bool   `json:"status"`
}

type HealthStatus struct {
	Status   bool               `json:"status"`
	Statuses []HealthItemStatus `json:"statuses"`
}

func AdaptHealthStatus(status models.HealthStatus) HealthStatus {
	return HealthStatus{
		Status: status.IsHealthy(),
		Statuses: pure_utils.Map(status.Statuses, func(item models.HealthItemStatus) HealthItemStatus {
			return HealthItemStatus{Name: string(item.Name), Status: item.Status}
		}),
	}
}
