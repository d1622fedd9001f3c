package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type LivenessRepository struct {
	mock.Mock
}

func (m *LivenessRepository) Liveness(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
