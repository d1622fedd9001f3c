package models

import (
	"time"

	"github.com/google/uuid"
)

type HistoryRecord struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	EntityName        string
	EntityAffiliation string
	EntityTitle       string
	EntityType        EntityType
	Dossier           ResearchDossier
	CreatedAt         time.Time
}

type HistorySummary struct {
	Id                uuid.UUID
	EntityName        string
	EntityAffiliation string
	EntityType        EntityType
	CreatedAt         time.Time
}

type CreateHistoryRecord struct {
	UserId  uuid.UUID
	Profile EntityProfile
	Dossier ResearchDossier
}
