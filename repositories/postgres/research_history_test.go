package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grantscout/grantscout-backend/models"
	"github.com/grantscout/grantscout-backend/repositories/dbmodels"
)

var (
	historyOwner = uuid.MustParse("0195a0a4-5e3b-7a4f-8b3e-2f1c0d9e8a71")
	historyId    = uuid.MustParse("0195a0a5-0c11-7d2e-9f40-6b7a8c9d0e12")
	generatedAt  = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
)

func exampleDossier() models.ResearchDossier {
	return models.ResearchDossier{
		ResearchFocus:            []string{"Protein folding"},
		ProjectsPublications:     []string{"Nature 2024"},
		InstitutionalConnections: []string{"EMBL"},
		FundingHistory:           []string{"ERC Starting Grant"},
		PublicMentions:           []string{"Interview"},
		StrategicInsights:        []string{"Open to collaboration"},
		EntityType:               models.EntityTypeAcademic,
		GeneratedAt:              generatedAt,
	}
}

func TestDatabase_AppendHistory(t *testing.T) {
	record := models.CreateHistoryRecord{
		UserId: historyOwner,
		Profile: models.EntityProfile{
			FullName:    "Jane Doe",
			Affiliation: "MIT",
			Title:       "Professor",
		},
		Dossier: exampleDossier(),
	}

	t.Run("committed", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO research_history").
			WithArgs(pgxmock.AnyArg(), historyOwner, "Jane Doe", "MIT", "Professor", "academic", pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		database := Database{pool: mock}
		id, err := database.AppendHistory(context.Background(), record)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO research_history").
			WithArgs(pgxmock.AnyArg(), historyOwner, "Jane Doe", "MIT", "Professor", "academic", pgxmock.AnyArg()).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		database := Database{pool: mock}
		id, err := database.AppendHistory(context.Background(), record)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, uuid.Nil, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commit failure", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO research_history").
			WithArgs(pgxmock.AnyArg(), historyOwner, "Jane Doe", "MIT", "Professor", "academic", pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit().WillReturnError(assert.AnError)

		database := Database{pool: mock}
		_, err = database.AppendHistory(context.Background(), record)
		assert.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDatabase_ListHistory(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	older := uuid.MustParse("0195a0a4-0000-7000-8000-000000000001")
	mock.ExpectQuery("SELECT id, entity_name, entity_affiliation, entity_type, created_at FROM research_history WHERE user_id = \\$1 ORDER BY created_at DESC").
		WithArgs(historyOwner).
		WillReturnRows(pgxmock.NewRows([]string{"id", "entity_name", "entity_affiliation", "entity_type", "created_at"}).
			AddRow(historyId, "Acme", "Acme Inc", "startup", generatedAt).
			AddRow(older, "Jane Doe", "MIT", "academic", generatedAt.Add(-time.Hour)))

	database := Database{pool: mock}
	summaries, err := database.ListHistory(context.Background(), historyOwner)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, historyId, summaries[0].Id)
	assert.Equal(t, models.EntityTypeStartup, summaries[0].EntityType)
	assert.Equal(t, older, summaries[1].Id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatabase_GetHistoryRecord(t *testing.T) {
	columns := []string{
		"id", "user_id", "entity_name", "entity_affiliation",
		"entity_title", "entity_type", "research_data", "created_at",
	}

	t.Run("nominal", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		data, err := json.Marshal(dbmodels.AdaptResearchData(exampleDossier()))
		require.NoError(t, err)

		mock.ExpectQuery("SELECT (.+) FROM research_history WHERE id = \\$1 AND user_id = \\$2").
			WithArgs(historyId, historyOwner).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(historyId, historyOwner, "Jane Doe", "MIT", "Professor", "academic", data, generatedAt))

		database := Database{pool: mock}
		record, err := database.GetHistoryRecord(context.Background(), historyOwner, historyId)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", record.EntityName)
		assert.Equal(t, "Professor", record.EntityTitle)
		assert.Equal(t, exampleDossier(), record.Dossier)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing or foreign record", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT (.+) FROM research_history").
			WithArgs(historyId, historyOwner).
			WillReturnRows(pgxmock.NewRows(columns))

		database := Database{pool: mock}
		_, err = database.GetHistoryRecord(context.Background(), historyOwner, historyId)
		assert.ErrorIs(t, err, models.ErrHistoryNotFound)
		assert.ErrorIs(t, err, models.NotFoundError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDatabase_DeleteHistoryRecord(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM research_history WHERE id = \\$1 AND user_id = \\$2").
			WithArgs(historyId, historyOwner).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		database := Database{pool: mock}
		assert.NoError(t, database.DeleteHistoryRecord(context.Background(), historyOwner, historyId))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing deleted", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM research_history").
			WithArgs(historyId, historyOwner).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		database := Database{pool: mock}
		err = database.DeleteHistoryRecord(context.Background(), historyOwner, historyId)
		assert.ErrorIs(t, err, models.ErrHistoryNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDatabase_Liveness(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT 1").WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))

	database := Database{pool: mock}
	assert.NoError(t, database.Liveness(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
