package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinPasswordLength = 8
	// bcrypt rejects longer passwords
	MaxPasswordLength = 72
)

type User struct {
	Id           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	LastLogin    *time.Time
}

type CreateUser struct {
	Email        string
	Name         string
	PasswordHash string
}

type Registration struct {
	Email    string
	Password string
	Name     string
}

type LoginAttempt struct {
	Email    string
	Password string
}

// AuthenticatedUser is returned by register and login.
type AuthenticatedUser struct {
	User  User
	Token string
}
