package dto

import (
	"context"
	"strings"

	"github.com/grantscout/grantscout-backend/models"
	"github.com/grantscout/grantscout-backend/utils"
)

// Name and affiliation presence is checked by the verifier, so that the caller gets the domain message.
type VerifyInput struct {
	Name        string `json:"name" binding:"max=300"`
	Affiliation string `json:"affiliation" binding:"max=300"`
	EntityType  string `json:"entityType"`
}

func AdaptEntityQuery(ctx context.Context, input VerifyInput) models.EntityQuery {
	return models.EntityQuery{
		Name:        strings.TrimSpace(input.Name),
		Affiliation: strings.TrimSpace(input.Affiliation),
		EntityType:  AdaptEntityType(ctx, input.EntityType),
	}
}

// AdaptEntityType never rejects a value. Unknown types are logged and read as academic.
func AdaptEntityType(ctx context.Context, raw string) models.EntityType {
	entityType := models.EntityTypeFrom(raw)
	if raw != "" && string(entityType) != raw {
		utils.LoggerFromContext(ctx).WarnContext(ctx, "invalid entity type, defaulting to academic",
			"entity_type", raw)
	}
	return entityType
}

type VerifiedEntity struct {
	FullName           string  `json:"full_name"`
	Affiliation        string  `json:"affiliation"`
	Title              string  `json:"title"`
	BriefDescription   string  `json:"brief_description"`
	ConfidenceScore    float64 `json:"confidence_score"`
	VerificationStatus string  `json:"verification_status"`
	RawResponse        string  `json:"raw_response,omitempty"`
	Error              string  `json:"error,omitempty"`
}

func AdaptVerifiedEntityDto(entity models.VerifiedEntity) VerifiedEntity {
	return VerifiedEntity{
		FullName:           entity.FullName,
		Affiliation:        entity.Affiliation,
		Title:              entity.Title,
		BriefDescription:   entity.BriefDescription,
		ConfidenceScore:    entity.ConfidenceScore,
		VerificationStatus: string(entity.VerificationStatus),
		RawResponse:        entity.RawResponse,
		Error:              entity.Error,
	}
}
