package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/grantscout/grantscout-backend/models"
)

type JwtEncoder struct {
	mock.Mock
}

func (m *JwtEncoder) EncodeToken(identity models.Identity) (string, error) {
	args := m.Called(identity)
	return args.String(0), args.Error(1)
}

type JwtValidator struct {
	mock.Mock
}

func (m *JwtValidator) ValidateToken(raw string) (models.Identity, error) {
	args := m.Called(raw)
	return args.Get(0).(models.Identity), args.Error(1)
}
