package models

import "strings"

type EntityType string

const (
	EntityTypeAcademic EntityType = "academic"
	EntityTypeStartup  EntityType = "startup"
)

func (t EntityType) IsValid() bool {
	return t == EntityTypeAcademic || t == EntityTypeStartup
}

// EntityTypeFrom never fails: anything that is not exactly a known type, case included, resolves to academic.
func EntityTypeFrom(s string) EntityType {
	t := EntityType(s)
	if !t.IsValid() {
		return EntityTypeAcademic
	}
	return t
}

type EntityQuery struct {
	Name        string
	Affiliation string
	EntityType  EntityType
}

type VerificationStatus string

const (
	VerificationSuccess VerificationStatus = "success"
	VerificationFailed  VerificationStatus = "failed"
)

const (
	MinConfidenceScore = 0.0
	MaxConfidenceScore = 100.0
)

type VerifiedEntity struct {
	FullName           string
	Affiliation        string
	Title              string
	BriefDescription   string
	ConfidenceScore    float64
	VerificationStatus VerificationStatus

	// Only set on degraded results.
	RawResponse string
	Error       string
}

func (e VerifiedEntity) Verified() bool {
	return e.VerificationStatus == VerificationSuccess
}

// IsInputRejection reports a failed verification whose diagnostic points at the caller's input rather than
// at the completion service.
func (e VerifiedEntity) IsInputRejection() bool {
	if e.Verified() {
		return false
	}
	msg := strings.ToLower(e.Error)
	return strings.Contains(msg, "invalid name") || strings.Contains(msg, "invalid affiliation")
}

// EntityProfile is the subset of a verified entity the research stage needs. Callers may build it from a
// previous verification or supply it directly.
type EntityProfile struct {
	FullName         string
	Affiliation      string
	Title            string
	BriefDescription string
}

func (e VerifiedEntity) Profile() EntityProfile {
	return EntityProfile{
		FullName:         e.FullName,
		Affiliation:      e.Affiliation,
		Title:            e.Title,
		BriefDescription: e.BriefDescription,
	}
}
