package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/grantscout/grantscout-backend/models"
)

type EntityVerifier struct {
	mock.Mock
}

func (m *EntityVerifier) Verify(ctx context.Context, query models.EntityQuery) (models.VerifiedEntity, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(models.VerifiedEntity), args.Error(1)
}
