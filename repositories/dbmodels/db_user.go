package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/grantscout/grantscout-backend/models"
	"github.com/grantscout/grantscout-backend/utils"
)

type DBUser struct {
	Id           uuid.UUID  `db:"id"`
	Email        string     `db:"email"`
	Name         string     `db:"name"`
	PasswordHash string     `db:"password_hash"`
	CreatedAt    time.Time  `db:"created_at"`
	LastLogin    *time.Time `db:"last_login"`
}

const TABLE_USERS = "users"

var UserFields = utils.ColumnList[DBUser]()

func AdaptUser(db DBUser) models.User {
	return models.User{
		Id:           db.Id,
		Email:        db.Email,
		Name:         db.Name,
		PasswordHash: db.PasswordHash,
		CreatedAt:    db.CreatedAt,
		LastLogin:    db.LastLogin,
	}
}
