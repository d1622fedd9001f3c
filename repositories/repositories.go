package repositories

import (
	"crypto/rsa"
	"time"

	"github.com/grantscout/grantscout-backend/repositories/postgres"
)

type Repositories struct {
	Database       *postgres.Database
	JwtRepository  *JwtRepository
	PasswordHasher PasswordHasher

	// nil when no completion provider is configured
	CompletionClient CompletionClient
}

type Option func(*options)

type options struct {
	tokenValidity    time.Duration
	passwordCost     int
	completionClient CompletionClient
}

func WithTokenValidity(validity time.Duration) Option {
	return func(o *options) {
		o.tokenValidity = validity
	}
}

func WithPasswordHashCost(cost int) Option {
	return func(o *options) {
		o.passwordCost = cost
	}
}

func WithCompletionClient(client CompletionClient) Option {
	return func(o *options) {
		o.completionClient = client
	}
}

func NewRepositories(pool postgres.Pool, signingKey *rsa.PrivateKey, opts ...Option) Repositories {
	o := &options{
		tokenValidity: 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(o)
	}

	return Repositories{
		Database:         postgres.New(pool),
		JwtRepository:    NewJwtRepository(signingKey, o.tokenValidity),
		PasswordHasher:   NewPasswordHasher(o.passwordCost),
		CompletionClient: o.completionClient,
	}
}
