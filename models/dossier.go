package models

import "time"

type DossierSection string

const (
	SectionResearchFocus            DossierSection = "research_focus"
	SectionProjectsPublications     DossierSection = "projects_publications"
	SectionInstitutionalConnections DossierSection = "institutional_connections"
	SectionFundingHistory           DossierSection = "funding_history"
	SectionPublicMentions           DossierSection = "public_mentions"
	SectionStrategicInsights        DossierSection = "strategic_insights"
)

// DossierSections is ordered as presented to the user.
var DossierSections = []DossierSection{
	SectionResearchFocus,
	SectionProjectsPublications,
	SectionInstitutionalConnections,
	SectionFundingHistory,
	SectionPublicMentions,
	SectionStrategicInsights,
}

const SectionPlaceholder = "Information not available"

type ResearchDossier struct {
	ResearchFocus            []string
	ProjectsPublications     []string
	InstitutionalConnections []string
	FundingHistory           []string
	PublicMentions           []string
	StrategicInsights        []string

	EntityType  EntityType
	GeneratedAt time.Time

	// Fallback is true when the completion output could not be used at all.
	Fallback bool
}

func (d ResearchDossier) Section(s DossierSection) []string {
	switch s {
	case SectionResearchFocus:
		return d.ResearchFocus
	case SectionProjectsPublications:
		return d.ProjectsPublications
	case SectionInstitutionalConnections:
		return d.InstitutionalConnections
	case SectionFundingHistory:
		return d.FundingHistory
	case SectionPublicMentions:
		return d.PublicMentions
	case SectionStrategicInsights:
		return d.StrategicInsights
	}
	return nil
}

func (d *ResearchDossier) SetSection(s DossierSection, items []string) {
	switch s {
	case SectionResearchFocus:
		d.ResearchFocus = items
	case SectionProjectsPublications:
		d.ProjectsPublications = items
	case SectionInstitutionalConnections:
		d.InstitutionalConnections = items
	case SectionFundingHistory:
		d.FundingHistory = items
	case SectionPublicMentions:
		d.PublicMentions = items
	case SectionStrategicInsights:
		d.StrategicInsights = items
	}
}
