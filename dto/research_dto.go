package dto

import (
	"context"
	"strings"
	"time"

	"github.com/guregu/null/v5"

	"github.com/grantscout/grantscout-backend/models"
	"github.com/grantscout/grantscout-backend/pure_utils"
)

// EntityInfo is usually the verified entity returned by the verify route, sent back as is. Extra keys are ignored.
type EntityInfo struct {
	FullName         string `json:"full_name" binding:"max=300"`
	Affiliation      string `json:"affiliation" binding:"max=300"`
	Title            string `json:"title" binding:"max=300"`
	BriefDescription string `json:"brief_description" binding:"max=2000"`
}

type ResearchInput struct {
	EntityInfo *EntityInfo `json:"entityInfo"`
	EntityType string      `json:"entityType"`
}

func AdaptResearchRequest(ctx context.Context, input ResearchInput) (models.ResearchRequest, error) {
	if input.EntityInfo == nil {
		return models.ResearchRequest{}, models.ErrEntityInfoRequired
	}

	profile := models.EntityProfile{
		FullName:         strings.TrimSpace(input.EntityInfo.FullName),
		Affiliation:      strings.TrimSpace(input.EntityInfo.Affiliation),
		Title:            strings.TrimSpace(input.EntityInfo.Title),
		BriefDescription: strings.TrimSpace(input.EntityInfo.BriefDescription),
	}
	if profile.IsEmpty() {
		return models.ResearchRequest{}, models.ErrEntityInfoRequired
	}

	return models.ResearchRequest{
		Profile:    profile,
		EntityType: AdaptEntityType(ctx, input.EntityType),
	}, nil
}

type ResearchDossier struct {
	ResearchFocus            []string    `json:"research_focus"`
	ProjectsPublications     []string    `json:"projects_publications"`
	InstitutionalConnections []string    `json:"institutional_connections"`
	FundingHistory           []string    `json:"funding_history"`
	PublicMentions           []string    `json:"public_mentions"`
	StrategicInsights        []string    `json:"strategic_insights"`
	EntityType               string      `json:"entity_type"`
	GeneratedAt              time.Time   `json:"generated_at"`
	Fallback                 bool        `json:"fallback,omitempty"`
	HistoryId                null.String `json:"history_id,omitzero"`
}

func AdaptResearchDossierDto(dossier models.ResearchDossier) ResearchDossier {
	return ResearchDossier{
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

func AdaptResearchResultDto(result models.ResearchResult) ResearchDossier {
	out := AdaptResearchDossierDto(result.Dossier)
	if result.HistoryId != nil {
		out.HistoryId = null.StringFrom(result.HistoryId.String())
	}
	return out
}
