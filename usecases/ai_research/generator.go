package ai_research

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tidwall/gjson"

	"github.com/grantscout/grantscout-backend/models"
	"github.com/grantscout/grantscout-backend/usecases/llm_contract"
	"github.com/grantscout/grantscout-backend/utils"
)

type researchPayload struct {
	ResearchFocus            []string `json:"research_focus" jsonschema_description:"Current and past focus areas"`
	ProjectsPublications     []string `json:"projects_publications" jsonschema_description:"Notable projects, publications or products"`
	InstitutionalConnections []string `json:"institutional_connections" jsonschema_description:"Collaborators, institutions or partners"`
	FundingHistory           []string `json:"funding_history" jsonschema_description:"Funding agency or investor, project name and year when known"`
	PublicMentions           []string `json:"public_mentions" jsonschema_description:"Press coverage, awards or other recognition"`
	StrategicInsights        []string `json:"strategic_insights" jsonschema_description:"Insights derived from the verified information to support grants, pitches or partnerships"`
}

var researchSchema = func() llm_contract.Schema {
	schema := make(llm_contract.Schema, 0, len(models.DossierSections))
	for _, section := range models.DossierSections {
		schema = append(schema, llm_contract.Field{
			Name:    string(section),
			Kind:    llm_contract.StringListField,
			Default: []string{models.SectionPlaceholder},
		})
	}
	return schema
}()

type Generator struct {
	completer       llm_contract.Completer
	templates       llm_contract.TemplateSet
	maxOutputTokens int
	now             func() time.Time
}

func NewGenerator(completer llm_contract.Completer, maxOutputTokens int) *Generator {
	return &Generator{
		completer:       completer,
		templates:       loadTemplates(promptKindResearch, llm_contract.DescribeSchema[researchPayload]()),
		maxOutputTokens: maxOutputTokens,
		now:             time.Now,
	}
}

// Generate always returns a dossier with the six sections. Sections missing from the completion get a
// placeholder; an unusable completion gives the fallback dossier of the entity type.
func (g *Generator) Generate(ctx context.Context, profile models.EntityProfile, entityType models.EntityType) models.ResearchDossier {
	logger := utils.LoggerFromContext(ctx)

	if !entityType.IsValid() {
		entityType = models.EntityTypeAcademic
	}

	logger.InfoContext(ctx, "Generating research",
		"name", profile.FullName,
		"affiliation", profile.Affiliation,
		"entity_type", entityType)

	contract := llm_contract.NewContract(
		promptKindResearch,
		g.completer,
		g.maxOutputTokens,
		decodeDossier,
		func(ctx context.Context, malformed llm_contract.Extraction) models.ResearchDossier {
			logger.WarnContext(ctx, "Returning fallback research dossier",
				"entity_type", entityType,
				"reason", malformed.Reason())
			return FallbackDossier(entityType)
		},
	)

	dossier := contract.Run(ctx, g.templates.Select(entityType), map[string]any{
		"name":        profile.FullName,
		"title":       profile.Title,
		"affiliation": profile.Affiliation,
	})
	dossier.EntityType = entityType
	dossier.GeneratedAt = g.now().UTC()

	outcome := "generated"
	if dossier.Fallback {
		outcome = "fallback"
	}
	utils.MetricResearchCount.With(prometheus.Labels{
		"entity_type": string(entityType),
		"outcome":     outcome,
	}).Inc()

	return dossier
}

func decodeDossier(ctx context.Context, payload gjson.Result) models.ResearchDossier {
	fields := researchSchema.Validate(ctx, payload)

	var dossier models.ResearchDossier
	for _, section := range models.DossierSections {
		dossier.SetSection(section, fields.Strings(string(section)))
	}
	return dossier
}
