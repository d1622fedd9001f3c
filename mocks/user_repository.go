package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/grantscout/grantscout-backend/models"
)

type UserRepository struct {
	mock.Mock
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.CreateUser) (models.User, error) {
	args := r.Called(ctx, user)
	return args.Get(0).(models.User), args.Error(1)
}

func (r *UserRepository) UserByEmail(ctx context.Context, email string) (models.User, error) {
	args := r.Called(ctx, email)
	return args.Get(0).(models.User), args.Error(1)
}

func (r *UserRepository) UserById(ctx context.Context, userId uuid.UUID) (models.User, error) {
	args := r.Called(ctx, userId)
	return args.Get(0).(models.User), args.Error(1)
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userId uuid.UUID, at time.Time) error {
	args := r.Called(ctx, userId, at)
	return args.Error(0)
}
