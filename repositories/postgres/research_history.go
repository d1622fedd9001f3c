package postgres

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/grantscout/grantscout-backend/models"
	"github.com/grantscout/grantscout-backend/pure_utils"
	"github.com/grantscout/grantscout-backend/repositories/dbmodels"
)

// AppendHistory stores a dossier snapshot for the user inside its own transaction
// and returns the id of the new record.
func (db *Database) AppendHistory(ctx context.Context, record models.CreateHistoryRecord) (uuid.UUID, error) {
	researchData, err := json.Marshal(dbmodels.AdaptResearchData(record.Dossier))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "could not marshal research data")
	}

	id := uuid.Must(uuid.NewV7())
	sql, args, err := NewQueryBuilder().
		Insert(dbmodels.TABLE_RESEARCH_HISTORY).
		Columns(
			"id",
			"user_id",
			"entity_name",
			"entity_affiliation",
			"entity_title",
			"entity_type",
			"research_data",
		).
		Values(
			id,
			record.UserId,
			record.Profile.FullName,
			record.Profile.Affiliation,
			record.Profile.Title,
			string(record.Dossier.EntityType),
			researchData,
		).
		ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "could not begin history transaction")
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		_ = tx.Rollback(ctx)
		if IsForeignKeyViolationError(err) {
			return uuid.Nil, errors.Wrap(models.ErrUnknownUser, "history owner does not exist")
		}
		return uuid.Nil, errors.Wrap(err, "could not insert history record")
	}
	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, errors.Wrap(err, "could not commit history record")
	}
	return id, nil
}

// ListHistory returns the user's records, newest first.
func (db *Database) ListHistory(ctx context.Context, userId uuid.UUID) ([]models.HistorySummary, error) {
	sql, args, err := NewQueryBuilder().
		Select(dbmodels.HistorySummaryFields...).
		From(dbmodels.TABLE_RESEARCH_HISTORY).
		Where("user_id = ?", userId).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "could not list history")
	}
	summaries, err := pgx.CollectRows(rows, rowTo[dbmodels.DBHistorySummary])
	if err != nil {
		return nil, errors.Wrap(err, "could not list history")
	}
	return pure_utils.Map(summaries, dbmodels.AdaptHistorySummary), nil
}

// GetHistoryRecord only returns records owned by the user. Foreign records are reported as missing.
func (db *Database) GetHistoryRecord(ctx context.Context, userId, historyId uuid.UUID) (models.HistoryRecord, error) {
	sql, args, err := NewQueryBuilder().
		Select(dbmodels.HistoryRecordFields...).
		From(dbmodels.TABLE_RESEARCH_HISTORY).
		Where("id = ?", historyId).
		Where("user_id = ?", userId).
		ToSql()
	if err != nil {
		return models.HistoryRecord{}, err
	}

	rows, err := db.pool.Query(ctx, sql, args...)
	if err != nil {
		return models.HistoryRecord{}, errors.Wrap(err, "could not get history record")
	}
	record, err := pgx.CollectExactlyOneRow(rows, rowTo[dbmodels.DBHistoryRecord])
	if errors.Is(err, pgx.ErrNoRows) {
		return models.HistoryRecord{}, models.ErrHistoryNotFound
	}
	if err != nil {
		return models.HistoryRecord{}, errors.Wrap(err, "could not get history record")
	}
	return dbmodels.AdaptHistoryRecord(record)
}

func (db *Database) DeleteHistoryRecord(ctx context.Context, userId, historyId uuid.UUID) error {
	sql, args, err := NewQueryBuilder().
		Delete(dbmodels.TABLE_RESEARCH_HISTORY).
		Where("id = ?", historyId).
		Where("user_id = ?", userId).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := db.pool.Exec(ctx, sql, args...)
	if err != nil {
		return errors.Wrap(err, "could not delete history record")
	}
	if tag.RowsAffected() == 0 {
		return models.ErrHistoryNotFound
	}
	return nil
}

func columnsSql(columns []string) string {
	return strings.Join(columns, ", ")
}
