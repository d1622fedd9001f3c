package ai_research

import (
	"context"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tidwall/gjson"

	"github.com/grantscout/grantscout-backend/models"
	"github.com/grantscout/grantscout-backend/pure_utils"
	"github.com/grantscout/grantscout-backend/usecases/llm_contract"
	"github.com/grantscout/grantscout-backend/utils"
)

const (
	UnverifiedTitle       = "Unverified"
	UnverifiedDescription = "Information could not be verified automatically."

	// Below this Jaro-Winkler similarity between the requested and the returned name, a warning is logged.
	nameMismatchThreshold = 0.5
)

type verificationPayload struct {
	FullName         string  `json:"full_name" jsonschema_description:"Complete name of the person, or an empty string if not found"`
	Affiliation      string  `json:"affiliation" jsonschema_description:"Current institution or company, or an empty string if not found"`
	Title            string  `json:"title" jsonschema_description:"Current position or role, or an empty string if not found"`
	BriefDescription string  `json:"brief_description" jsonschema_description:"One or two sentences summarizing the person, including their field and focus"`
	ConfidenceScore  float64 `json:"confidence_score" jsonschema_description:"A number from 0 to 100 indicating match confidence"`
}

type Verifier struct {
	completer       llm_contract.Completer
	templates       llm_contract.TemplateSet
	maxOutputTokens int
}

func NewVerifier(completer llm_contract.Completer, maxOutputTokens int) *Verifier {
	return &Verifier{
		completer:       completer,
		templates:       loadTemplates(promptKindVerification, llm_contract.DescribeSchema[verificationPayload]()),
		maxOutputTokens: maxOutputTokens,
	}
}

func verificationSchema(query models.EntityQuery) llm_contract.Schema {
	return llm_contract.Schema{
		{Name: "full_name", Kind: llm_contract.StringField, Default: query.Name},
		{Name: "affiliation", Kind: llm_contract.StringField, Default: query.Affiliation},
		{Name: "title", Kind: llm_contract.StringField, Default: UnverifiedTitle},
		{Name: "brief_description", Kind: llm_contract.StringField, Default: UnverifiedDescription},
		{
			Name:    "confidence_score",
			Kind:    llm_contract.ScoreField,
			Default: models.MinConfidenceScore,
			Min:     models.MinConfidenceScore,
			Max:     models.MaxConfidenceScore,
		},
	}
}

// Verify makes exactly one completion call. The only errors are missing name or affiliation, detected before
// that call; everything that goes wrong afterwards yields a failed entity.
func (v *Verifier) Verify(ctx context.Context, query models.EntityQuery) (models.VerifiedEntity, error) {
	logger := utils.LoggerFromContext(ctx)

	query.Name = strings.TrimSpace(query.Name)
	query.Affiliation = strings.TrimSpace(query.Affiliation)
	if query.Name == "" {
		return models.VerifiedEntity{}, models.ErrNameRequired
	}
	if query.Affiliation == "" {
		return models.VerifiedEntity{}, models.ErrAffiliationRequired
	}
	if !query.EntityType.IsValid() {
		query.EntityType = models.EntityTypeAcademic
	}

	logger.InfoContext(ctx, "Verifying entity",
		"name", query.Name,
		"affiliation", query.Affiliation,
		"entity_type", query.EntityType)

	contract := llm_contract.NewContract(
		promptKindVerification,
		v.completer,
		v.maxOutputTokens,
		func(ctx context.Context, payload gjson.Result) models.VerifiedEntity {
			return decodeVerifiedEntity(ctx, query, payload)
		},
		func(ctx context.Context, malformed llm_contract.Extraction) models.VerifiedEntity {
			return unverifiedEntity(query, malformed)
		},
	)

	entity := contract.Run(ctx, v.templates.Select(query.EntityType), map[string]any{
		"name":        query.Name,
		"affiliation": query.Affiliation,
	})

	utils.MetricVerificationCount.With(prometheus.Labels{
		"entity_type": string(query.EntityType),
		"status":      string(entity.VerificationStatus),
	}).Inc()

	return entity, nil
}

func decodeVerifiedEntity(ctx context.Context, query models.EntityQuery, payload gjson.Result) models.VerifiedEntity {
	// the model declines the query with {"error": "Invalid name: ..."}
	if declined := strings.TrimSpace(payload.Get("error").String()); declined != "" {
		utils.LoggerFromContext(ctx).WarnContext(ctx, "Completion declined the verification",
			"name", query.Name,
			"affiliation", query.Affiliation,
			"error", declined)
		return declinedEntity(query, declined)
	}

	fields := verificationSchema(query).Validate(ctx, payload)

	entity := models.VerifiedEntity{
		FullName:           fields.String("full_name"),
		Affiliation:        fields.String("affiliation"),
		Title:              fields.String("title"),
		BriefDescription:   fields.String("brief_description"),
		ConfidenceScore:    fields.Score("confidence_score"),
		VerificationStatus: models.VerificationSuccess,
	}

	if similarity := pure_utils.NameSimilarity(query.Name, entity.FullName); similarity < nameMismatchThreshold {
		utils.LoggerFromContext(ctx).WarnContext(ctx, "Verified name differs from the requested name",
			"requested", query.Name,
			"returned", entity.FullName,
			"similarity", similarity,
			"confidence_score", entity.ConfidenceScore)
	}

	return entity
}

func unverifiedEntity(query models.EntityQuery, malformed llm_contract.Extraction) models.VerifiedEntity {
	return models.VerifiedEntity{
		FullName:           query.Name,
		Affiliation:        query.Affiliation,
		Title:              UnverifiedTitle,
		BriefDescription:   UnverifiedDescription,
		ConfidenceScore:    models.MinConfidenceScore,
		VerificationStatus: models.VerificationFailed,
		RawResponse:        malformed.Raw(),
		Error:              malformed.Reason(),
	}
}

func declinedEntity(query models.EntityQuery, reason string) models.VerifiedEntity {
	return models.VerifiedEntity{
		FullName:           query.Name,
		Affiliation:        query.Affiliation,
		Title:              UnverifiedTitle,
		BriefDescription:   UnverifiedDescription,
		ConfidenceScore:    models.MinConfidenceScore,
		VerificationStatus: models.VerificationFailed,
		Error:              reason,
	}
}
