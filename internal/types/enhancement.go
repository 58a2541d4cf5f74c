// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// EnhancementResult represents the derived output of one pipeline run. It is
// never persisted directly; it is recomputed from a Profile on each run.
type EnhancementResult struct {
	Summary     string     `json:"summary"`
	Bullets     []string   `json:"bullets"`
	ATSKeywords KeywordSet `json:"ats_keywords"`
	CoverLetter string     `json:"cover_letter"`
	// ResumeText is the profile's resume text after missing ATS keywords
	// have been merged in as an additional skills section.
	ResumeText string `json:"resume_text"`
}

// TemplateStyle selects one of the fixed resume layouts
type TemplateStyle string

// Template style values
const (
	TemplateModern       TemplateStyle = "modern"
	TemplateClassic      TemplateStyle = "classic"
	TemplateProfessional TemplateStyle = "professional"
)

// Valid reports whether the style names a known template
func (t TemplateStyle) Valid() bool {
	switch t {
	case TemplateModern, TemplateClassic, TemplateProfessional:
		return true
	}
	return false
}

// ExportFormat selects which resume document formats to render
type ExportFormat string

// Export format values
const (
	ExportPDF  ExportFormat = "pdf"
	ExportDOCX ExportFormat = "docx"
	ExportBoth ExportFormat = "both"
)

// Valid reports whether the format names a known export option
func (f ExportFormat) Valid() bool {
	switch f {
	case ExportPDF, ExportDOCX, ExportBoth:
		return true
	}
	return false
}

// WantsPDF reports whether a PDF document should be rendered
func (f ExportFormat) WantsPDF() bool {
	return f == ExportPDF || f == ExportBoth
}

// WantsDOCX reports whether a DOCX document should be rendered
func (f ExportFormat) WantsDOCX() bool {
	return f == ExportDOCX || f == ExportBoth
}
