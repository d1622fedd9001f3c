package models

import "github.com/google/uuid"

// Identity is what a valid bearer token proves about the caller.
type Identity struct {
	UserId uuid.UUID
	Email  string
}

func (u User) Identity() Identity {
	return Identity{
		UserId: u.Id,
		Email:  u.Email,
	}
}
