package postgres

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/grantscout/grantscout-backend/models"
	"github.com/grantscout/grantscout-backend/repositories/dbmodels"
)

func (db *Database) CreateUser(ctx context.Context, user models.CreateUser) (models.User, error) {
	sql, args, err := NewQueryBuilder().
		Insert(dbmodels.TABLE_USERS).
		Columns("id", "email", "name", "password_hash").
		Values(uuid.Must(uuid.NewV7()), user.Email, user.Name, user.PasswordHash).
		Suffix("RETURNING " + columnsSql(dbmodels.UserFields)).
		ToSql()
	if err != nil {
		return models.User{}, err
	}

	var created dbmodels.DBUser
	rows, err := db.pool.Query(ctx, sql, args...)
	if err == nil {
		created, err = pgx.CollectExactlyOneRow(rows, rowTo[dbmodels.DBUser])
	}
	if IsUniqueViolationError(err) {
		return models.User{}, errors.WithDetail(models.ErrEmailAlreadyRegistered, user.Email)
	}
	if err != nil {
		return models.User{}, errors.Wrap(err, "could not insert user")
	}
	return dbmodels.AdaptUser(created), nil
}

func (db *Database) UserByEmail(ctx context.Context, email string) (models.User, error) {
	return db.selectUser(ctx, "email", email)
}

func (db *Database) UserById(ctx context.Context, userId uuid.UUID) (models.User, error) {
	return db.selectUser(ctx, "id", userId)
}

func (db *Database) selectUser(ctx context.Context, column string, value any) (models.User, error) {
	sql, args, err := NewQueryBuilder().
		Select(dbmodels.UserFields...).
		From(dbmodels.TABLE_USERS).
		Where(column+" = ?", value).
		ToSql()
	if err != nil {
		return models.User{}, err
	}

	rows, err := db.pool.Query(ctx, sql, args...)
	if err != nil {
		return models.User{}, errors.Wrap(err, "could not select user")
	}
	user, err := pgx.CollectExactlyOneRow(rows, rowTo[dbmodels.DBUser])
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, models.ErrUnknownUser
	}
	if err != nil {
		return models.User{}, errors.Wrap(err, "could not select user")
	}
	return dbmodels.AdaptUser(user), nil
}

func (db *Database) UpdateLastLogin(ctx context.Context, userId uuid.UUID, at time.Time) error {
	sql, args, err := NewQueryBuilder().
		Update(dbmodels.TABLE_USERS).
		Set("last_login", at).
		Where("id = ?", userId).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := db.pool.Exec(ctx, sql, args...)
	if err != nil {
		return errors.Wrap(err, "could not update last login")
	}
	if tag.RowsAffected() == 0 {
		return models.ErrUnknownUser
	}
	return nil
}
