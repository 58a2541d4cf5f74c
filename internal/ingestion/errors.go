// Package ingestion provides resume and job description text intake: file
// extraction (PDF, DOCX, plain text) and text normalization before analysis.
package ingestion

import "fmt"

// ExtractionError represents a failure to pull text out of a source document.
// It halts the pipeline run for that upload; nothing downstream executes.
type ExtractionError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed for %s: %s", e.Path, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// UnsupportedFormatError indicates the input file type has no extractor
type UnsupportedFormatError struct {
	Path   string
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q for %s (expected pdf, docx, or txt)", e.Format, e.Path)
}
