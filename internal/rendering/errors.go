// Package rendering renders resume documents (PDF and DOCX) from an
// enhancement result, in one of three fixed template layouts.
package rendering

import "fmt"

// RenderError represents a failure writing a resume document
type RenderError struct {
	Format  string
	Path    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s render failed for %s: %s: %v", e.Format, e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s render failed for %s: %s", e.Format, e.Path, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
