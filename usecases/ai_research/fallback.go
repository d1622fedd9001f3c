package ai_research

import (
	"slices"

	"github.com/grantscout/grantscout-backend/models"
)

var fallbackSections = map[models.EntityType]map[models.DossierSection][]string{
	models.EntityTypeAcademic: {
		models.SectionResearchFocus: {
			"Research interests could not be automatically determined",
			"Consider reviewing their institutional profile or academic publications",
		},
		models.SectionProjectsPublications: {
			"Publication information could not be automatically retrieved",
			"Check academic databases like Google Scholar or ResearchGate",
		},
		models.SectionInstitutionalConnections: {
			"Institutional connections could not be automatically mapped",
			"Consider reviewing their CV or institutional biography",
		},
		models.SectionFundingHistory: {
			"Funding history could not be automatically retrieved",
			"Check institutional grant databases or academic profiles",
		},
		models.SectionPublicMentions: {
			"Public mentions could not be automatically collected",
			"Consider a manual search in academic news sources",
		},
		models.SectionStrategicInsights: {
			"Consider aligning grant applications with their known research interests",
			"Explore potential collaborative opportunities based on complementary expertise",
			"Review successful grants in their field for strategic approaches",
		},
	},
	models.EntityTypeStartup: {
		models.SectionResearchFocus: {
			"Business focus areas could not be automatically determined",
			"Consider reviewing their company website or LinkedIn profile",
		},
		models.SectionProjectsPublications: {
			"Product information could not be automatically retrieved",
			"Check their company website or industry databases",
		},
		models.SectionInstitutionalConnections: {
			"Industry connections could not be automatically mapped",
			"Consider reviewing their LinkedIn profile or company partnerships",
		},
		models.SectionFundingHistory: {
			"Funding history could not be automatically retrieved",
			"Check startup databases like Crunchbase or PitchBook",
		},
		models.SectionPublicMentions: {
			"Public mentions could not be automatically collected",
			"Consider a manual search in business news sources",
		},
		models.SectionStrategicInsights: {
			"Consider examining market fit and differentiation factors",
			"Explore potential investment opportunities based on growth trajectory",
			"Review successful startups in their sector for strategic approaches",
		},
	},
}

// FallbackDossier is the dossier returned when the completion cannot be used at all. Metadata is left to the
// caller.
func FallbackDossier(entityType models.EntityType) models.ResearchDossier {
	sections, ok := fallbackSections[entityType]
	if !ok {
		sections = fallbackSections[models.EntityTypeAcademic]
	}

	dossier := models.ResearchDossier{Fallback: true}
	for _, section := range models.DossierSections {
		dossier.SetSection(section, slices.Clone(sections[section]))
	}
	return dossier
}
