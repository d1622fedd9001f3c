package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/grantscout/grantscout-backend/models"
	"github.com/grantscout/grantscout-backend/pure_utils"
	"github.com/grantscout/grantscout-backend/utils"
)

const TABLE_RESEARCH_HISTORY = "research_history"

type DBHistorySummary struct {
	Id                uuid.UUID `db:"id"`
	EntityName        string    `db:"entity_name"`
	EntityAffiliation string    `db:"entity_affiliation"`
	EntityType        string    `db:"entity_type"`
	CreatedAt         time.Time `db:"created_at"`
}

var HistorySummaryFields = utils.ColumnList[DBHistorySummary]()

func AdaptHistorySummary(db DBHistorySummary) models.HistorySummary {
	return models.HistorySummary{
		Id:                db.Id,
		EntityName:        db.EntityName,
		EntityAffiliation: db.EntityAffiliation,
		EntityType:        models.EntityTypeFrom(db.EntityType),
		CreatedAt:         db.CreatedAt,
	}
}

type DBHistoryRecord struct {
	Id                uuid.UUID `db:"id"`
	UserId            uuid.UUID `db:"user_id"`
	EntityName        string    `db:"entity_name"`
	EntityAffiliation string    `db:"entity_affiliation"`
	EntityTitle       string    `db:"entity_title"`
	EntityType        string    `db:"entity_type"`
	ResearchData      []byte    `db:"research_data"`
	CreatedAt         time.Time `db:"created_at"`
}

var HistoryRecordFields = utils.ColumnList[DBHistoryRecord]()

// DBResearchData is the jsonb snapshot of a dossier.
type DBResearchData struct {
	ResearchFocus            []string  `json:"research_focus"`
	ProjectsPublications     []string  `json:"projects_publications"`
	InstitutionalConnections []string  `json:"institutional_connections"`
	FundingHistory           []string  `json:"funding_history"`
	PublicMentions           []string  `json:"public_mentions"`
	StrategicInsights        []string  `json:"strategic_insights"`
	EntityType               string    `json:"entity_type"`
	GeneratedAt              time.Time `json:"generated_at"`
	Fallback                 bool      `json:"fallback,omitempty"`
}

func AdaptResearchData(dossier models.ResearchDossier) DBResearchData {
	return DBResearchData{
		ResearchFocus:            pure_utils.NonNil(dossier.ResearchFocus),
		ProjectsPublications:     pure_utils.NonNil(dossier.ProjectsPublications),
		InstitutionalConnections: pure_utils.NonNil(dossier.InstitutionalConnections),
		FundingHistory:           pure_utils.NonNil(dossier.FundingHistory),
		PublicMentions:           pure_utils.NonNil(dossier.PublicMentions),
		StrategicInsights:        pure_utils.NonNil(dossier.StrategicInsights),
		EntityType:               string(dossier.EntityType),
		GeneratedAt:              dossier.GeneratedAt,
		Fallback:                 dossier.Fallback,
	}
}

func AdaptHistoryRecord(db DBHistoryRecord) (models.HistoryRecord, error) {
	var data DBResearchData
	if err := json.Unmarshal(db.ResearchData, &data); err != nil {
		return models.HistoryRecord{}, errors.Wrapf(err, "could not unmarshal research data of history record %s", db.Id)
	}

	return models.HistoryRecord{
		Id:                db.Id,
		UserId:            db.UserId,
		EntityName:        db.EntityName,
		EntityAffiliation: db.EntityAffiliation,
		EntityTitle:       db.EntityTitle,
		EntityType:        models.EntityTypeFrom(db.EntityType),
		Dossier: models.ResearchDossier{
			ResearchFocus:            pure_utils.NonNil(data.ResearchFocus),
			ProjectsPublications:     pure_utils.NonNil(data.ProjectsPublications),
			InstitutionalConnections: pure_utils.NonNil(data.InstitutionalConnections),
			FundingHistory:           pure_utils.NonNil(data.FundingHistory),
			PublicMentions:           pure_utils.NonNil(data.PublicMentions),
			StrategicInsights:        pure_utils.NonNil(data.StrategicInsights),
			EntityType:               models.EntityTypeFrom(data.EntityType),
			GeneratedAt:              data.GeneratedAt,
			Fallback:                 data.Fallback,
		},
		CreatedAt: db.CreatedAt,
	}, nil
}
