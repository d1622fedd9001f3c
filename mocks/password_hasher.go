package mocks

import "github.com/stretchr/testify/mock"

type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Matches(hash, password string) bool {
	args := m.Called(hash, password)
	return args.Bool(0)
}
