package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/grantscout/grantscout-backend/models"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"max=254"`
	Password string `json:"password" binding:"max=72"`
	Name     string `json:"name" binding:"max=200"`
}

func AdaptRegistration(input RegisterInput) models.Registration {
	return models.Registration{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
	}
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func AdaptLoginAttempt(input LoginInput) models.LoginAttempt {
	return models.LoginAttempt{
		Email:    input.Email,
		Password: input.Password,
	}
}

type User struct {
	Id    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func AdaptUserDto(user models.User) User {
	return User{
		Id:    user.Id.String(),
		Email: user.Email,
		Name:  user.Name,
	}
}

type UserProfile struct {
	User
	CreatedAt time.Time `json:"created_at"`
	LastLogin null.Time `json:"last_login"`
}

func AdaptUserProfileDto(user models.User) UserProfile {
	return UserProfile{
		User:      AdaptUserDto(user),
		CreatedAt: user.CreatedAt,
		LastLogin: null.TimeFromPtr(user.LastLogin),
	}
}

type AuthenticatedUser struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

func AdaptAuthenticatedUserDto(authenticated models.AuthenticatedUser) AuthenticatedUser {
	return AuthenticatedUser{
		User:  AdaptUserDto(authenticated.User),
		Token: authenticated.Token,
	}
}
