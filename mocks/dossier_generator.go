package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/grantscout/grantscout-backend/models"
)

type DossierGenerator struct {
	mock.Mock
}

func (m *DossierGenerator) Generate(ctx context.Context, profile models.EntityProfile, entityType models.EntityType) models.ResearchDossier {
	args := m.Called(ctx, profile, entityType)
	return args.Get(0).(models.ResearchDossier)
}
