package dto

import (
	"time"

	"github.com/grantscout/grantscout-backend/models"
)

type HistorySummary struct {
	Id                string    `json:"id"`
	EntityName        string    `json:"entity_name"`
	EntityAffiliation string    `json:"entity_affiliation"`
	EntityType        string    `json:"entity_type"`
	CreatedAt         time.Time `json:"created_at"`
}

func AdaptHistorySummaryDto(summary models.HistorySummary) HistorySummary {
	return HistorySummary{
		Id:                summary.Id.String(),
		EntityName:        summary.EntityName,
		EntityAffiliation: summary.EntityAffiliation,
		EntityType:        string(summary.EntityType),
		CreatedAt:         summary.CreatedAt,
	}
}

type HistoryRecord struct {
	Id                string          `json:"id"`
	EntityName        string          `json:"entity_name"`
	EntityAffiliation string          `json:"entity_affiliation"`
	EntityTitle       string          `json:"entity_title"`
	EntityType        string          `json:"entity_type"`
	ResearchData      ResearchDossier `json:"research_data"`
	CreatedAt         time.Time       `json:"created_at"`
}

func AdaptHistoryRecordDto(record models.HistoryRecord) HistoryRecord {
	return HistoryRecord{
		Id:                record.Id.String(),
		EntityName:        record.EntityName,
		EntityAffiliation: record.EntityAffiliation,
		EntityTitle:       record.EntityTitle,
		EntityType:        string(record.EntityType),
		ResearchData:      AdaptResearchDossierDto(record.Dossier),
		CreatedAt:         record.CreatedAt,
	}
}
