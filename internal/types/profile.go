// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// DocumentSource identifies where a resume document's text came from
type DocumentSource string

// Document source values
const (
	SourceUploadedFile  DocumentSource = "uploaded-file"
	SourceManualEntry   DocumentSource = "manual-entry"
	SourceLoadedProfile DocumentSource = "loaded-profile"
)

// Document represents an immutable piece of extracted text entering the pipeline
type Document struct {
	RawText string         `json:"raw_text"`
	Source  DocumentSource `json:"source"`
}

// Profile represents the persisted candidate input record. It is created from
// user input or loaded from a saved JSON snapshot, and serialized wholesale on
// save. Generated fields (Summary, CoverLetter) are included in the snapshot so
// a saved profile is self-contained.
type Profile struct {
	Name           string   `json:"name" validate:"required"`
	Email          string   `json:"email" validate:"omitempty,email"`
	ResumeText     string   `json:"resume_text" validate:"required"`
	JobDescription string   `json:"job_description,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	Summary        string   `json:"summary,omitempty"`
	CoverLetter    string   `json:"cover_letter,omitempty"`
	CreatedAt      string   `json:"created_at"` // ISO-8601
}

// SkillsList returns the declared skills joined for display
func (p *Profile) SkillsList() string {
	return strings.Join(p.Skills, ", ")
}

// CombinedText returns the text the analysis pipeline runs over: the resume
// text plus any declared skills not already part of it.
func (p *Profile) CombinedText() string {
	if len(p.Skills) == 0 {
		return p.ResumeText
	}
	lower := strings.ToLower(p.ResumeText)
	missing := make([]string, 0, len(p.Skills))
	for _, skill := range p.Skills {
		if skill == "" {
			continue
		}
		if !strings.Contains(lower, strings.ToLower(skill)) {
			missing = append(missing, skill)
		}
	}
	if len(missing) == 0 {
		return p.ResumeText
	}
	if p.ResumeText == "" {
		return strings.Join(missing, "\n")
	}
	return p.ResumeText + "\n" + strings.Join(missing, "\n")
}
