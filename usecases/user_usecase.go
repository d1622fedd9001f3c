package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/segmentio/analytics-go/v3"

	"github.com/grantscout/grantscout-backend/models"
	"github.com/grantscout/grantscout-backend/pure_utils"
	"github.com/grantscout/grantscout-backend/utils"
)

type userRepository interface {
	CreateUser(ctx context.Context, user models.CreateUser) (models.User, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UserById(ctx context.Context, userId uuid.UUID) (models.User, error)
	UpdateLastLogin(ctx context.Context, userId uuid.UUID, at time.Time) error
}

type passwordHasher interface {
	Hash(password string) (string, error)
	Matches(hash, password string) bool
}

type tokenEncoder interface {
	EncodeToken(identity models.Identity) (string, error)
}

type UserUsecase struct {
	userRepository userRepository
	passwordHasher passwordHasher
	tokenEncoder   tokenEncoder
	now            func() time.Time
}

func (u *UserUsecase) Register(ctx context.Context, registration models.Registration) (models.AuthenticatedUser, error) {
	email := pure_utils.NormalizeEmail(registration.Email)
	name := strings.TrimSpace(registration.Name)
	if email == "" {
		return models.AuthenticatedUser{}, models.ErrEmailRequired
	}
	if len(registration.Password) < models.MinPasswordLength {
		return models.AuthenticatedUser{}, models.ErrPasswordTooShort
	}
	if len(registration.Password) > models.MaxPasswordLength {
		return models.AuthenticatedUser{}, models.ErrPasswordTooLong
	}

	hash, err := u.passwordHasher.Hash(registration.Password)
	if err != nil {
		return models.AuthenticatedUser{}, err
	}

	user, err := u.userRepository.CreateUser(ctx, models.CreateUser{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	})
	if err != nil {
		return models.AuthenticatedUser{}, err
	}

	token, err := u.tokenEncoder.EncodeToken(user.Identity())
	if err != nil {
		return models.AuthenticatedUser{}, err
	}

	ctx = utils.StoreIdentityInContext(ctx, user.Identity())
	utils.TrackEvent(ctx, utils.AnalyticsUserRegistered, analytics.NewProperties())

	return models.AuthenticatedUser{User: user, Token: token}, nil
}

func (u *UserUsecase) Login(ctx context.Context, attempt models.LoginAttempt) (models.AuthenticatedUser, error) {
	email := pure_utils.NormalizeEmail(attempt.Email)
	if email == "" || attempt.Password == "" {
		return models.AuthenticatedUser{}, models.ErrCredentialsRequired
	}

	user, err := u.userRepository.UserByEmail(ctx, email)
	if errors.Is(err, models.ErrUnknownUser) {
		return models.AuthenticatedUser{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.AuthenticatedUser{}, err
	}
	if !u.passwordHasher.Matches(user.PasswordHash, attempt.Password) {
		return models.AuthenticatedUser{}, models.ErrInvalidCredentials
	}

	loginAt := u.now().UTC()
	if err := u.userRepository.UpdateLastLogin(ctx, user.Id, loginAt); err != nil {
		return models.AuthenticatedUser{}, err
	}
	user.LastLogin = &loginAt

	token, err := u.tokenEncoder.EncodeToken(user.Identity())
	if err != nil {
		return models.AuthenticatedUser{}, err
	}

	ctx = utils.StoreIdentityInContext(ctx, user.Identity())
	utils.TrackEvent(ctx, utils.AnalyticsUserLoggedIn, analytics.NewProperties())

	return models.AuthenticatedUser{User: user, Token: token}, nil
}

func (u *UserUsecase) Me(ctx context.Context, identity models.Identity) (models.User, error) {
	return u.userRepository.UserById(ctx, identity.UserId)
}
