package models

import (
	"strings"

	"github.com/google/uuid"
)

type ResearchRequest struct {
	Profile    EntityProfile
	EntityType EntityType
}

func (p EntityProfile) IsEmpty() bool {
	return strings.TrimSpace(p.FullName) == "" &&
		strings.TrimSpace(p.Affiliation) == "" &&
		strings.TrimSpace(p.Title) == "" &&
		strings.TrimSpace(p.BriefDescription) == ""
}

type ResearchResult struct {
	Dossier ResearchDossier

	// Set only when the dossier was saved to the caller's history.
	HistoryId *uuid.UUID
}
