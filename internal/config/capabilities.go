package config

import "github.com/jonathan/resume-builder/internal/rendering"

// Capabilities holds feature flags probed once at startup and consumed by the
// export layer. Export options whose capability probe fails are disabled up
// front rather than discovered through runtime errors.
type Capabilities struct {
	DOCX bool
}

// DetectCapabilities probes optional features
func DetectCapabilities() Capabilities {
	return Capabilities{
		DOCX: rendering.ProbeDOCX(),
	}
}
