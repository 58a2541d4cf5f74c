package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/pipeline"
	"github.com/jonathan/resume-builder/internal/types"
)

// maxUploadBytes caps multipart resume uploads at 10 MB
const maxUploadBytes = 10 << 20

// EnhanceRequest represents the request body for /enhance
type EnhanceRequest struct {
	Name           string   `json:"name" validate:"required"`
	Email          string   `json:"email,omitempty" validate:"omitempty,email"`
	ResumeText     string   `json:"resume_text" validate:"required"`
	JobDescription string   `json:"job_description,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	Template       string   `json:"template,omitempty"`
	Format         string   `json:"format,omitempty"`
	Export         bool     `json:"export,omitempty"`
}

// EnhanceResponse represents the response for /enhance
type EnhanceResponse struct {
	RunID       string                   `json:"run_id"`
	Enhancement *types.EnhancementResult `json:"enhancement"`
	PDFPath     string                   `json:"pdf_path,omitempty"`
	DOCXPath    string                   `json:"docx_path,omitempty"`
	ProfilePath string                   `json:"profile_path,omitempty"`
	BundlePath  string                   `json:"bundle_path,omitempty"`
}

// ProfileListResponse represents the response for GET /profiles
type ProfileListResponse struct {
	Profiles []ProfileSummary `json:"profiles"`
}

// ProfileSummary is one entry in the profile listing
type ProfileSummary struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	CreatedAt string `json:"created_at"`
}

// SaveProfileResponse represents the response for POST /profiles
type SaveProfileResponse struct {
	Path string `json:"path"`
}

// HealthResponse represents the response for /health
type HealthResponse struct {
	Status string `json:"status"`
	DOCX   bool   `json:"docx_export"`
}

// handleHealth reports server health and export capabilities
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, HealthResponse{
		Status: "ok",
		DOCX:   s.capabilities.DOCX,
	})
}

// handleEnhance runs the enhancement pipeline on a JSON profile
func (s *Server) handleEnhance(w http.ResponseWriter, r *http.Request) {
	var req EnhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	p := &types.Profile{
		Name:           req.Name,
		Email:          req.Email,
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescription,
		Skills:         req.Skills,
	}
	s.runEnhancement(w, p, req.Template, req.Format, req.Export)
}

// handleEnhanceUpload runs the pipeline on an uploaded resume file. The
// multipart form carries the file under "resume" plus the same fields the
// JSON endpoint accepts.
func (s *Server) handleEnhanceUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read upload: "+err.Error())
		return
	}

	doc, err := ingestion.IngestBytes(header.Filename, data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	name := r.FormValue("name")
	if name == "" {
		s.errorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	var skills []string
	if raw := r.FormValue("skills"); raw != "" {
		for _, skill := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(skill); trimmed != "" {
				skills = append(skills, trimmed)
			}
		}
	}

	p := &types.Profile{
		Name:           name,
		Email:          r.FormValue("email"),
		ResumeText:     doc.RawText,
		JobDescription: r.FormValue("job_description"),
		Skills:         skills,
	}
	export := r.FormValue("export") == "true"
	s.runEnhancement(w, p, r.FormValue("template"), r.FormValue("format"), export)
}

// runEnhancement validates options, runs the pipeline, and writes the response
func (s *Server) runEnhancement(w http.ResponseWriter, p *types.Profile, template, format string, export bool) {
	style := types.TemplateStyle(template)
	if template == "" {
		style = types.TemplateModern
	}
	if !style.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "Unknown template: "+template)
		return
	}

	exportFormat := types.ExportFormat(format)
	if format == "" {
		exportFormat = types.ExportPDF
	}
	if !exportFormat.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "Unknown format: "+format)
		return
	}

	run, err := pipeline.Run(pipeline.RunOptions{
		Profile:      p,
		Template:     style,
		Format:       exportFormat,
		OutputDir:    s.outputDir,
		Capabilities: s.capabilities,
		SkipExport:   !export,
	})
	if err != nil {
		log.Printf("Enhancement run failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, EnhanceResponse{
		RunID:       run.RunID.String(),
		Enhancement: run.Enhancement,
		PDFPath:     run.PDFPath,
		DOCXPath:    run.DOCXPath,
		ProfilePath: run.ProfilePath,
		BundlePath:  run.BundlePath,
	})
}

// handleSaveProfile persists a profile snapshot without running the pipeline
func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var p types.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	path, err := s.store.Save(&p)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, SaveProfileResponse{Path: path})
}

// handleListProfiles lists saved profiles, newest first
func (s *Server) handleListProfiles(w http.ResponseWriter, _ *http.Request) {
	paths, err := s.store.List()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list profiles: "+err.Error())
		return
	}

	resp := ProfileListResponse{Profiles: []ProfileSummary{}}
	for _, path := range paths {
		p, err := s.store.Load(path)
		if err != nil {
			log.Printf("Skipping unreadable profile %s: %v", path, err)
			continue
		}
		resp.Profiles = append(resp.Profiles, ProfileSummary{
			Name:      p.Name,
			Path:      path,
			CreatedAt: p.CreatedAt,
		})
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleGetProfile returns the most recent saved profile with the given name
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		s.errorResponse(w, http.StatusBadRequest, "Profile name is required")
		return
	}

	paths, err := s.store.List()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list profiles: "+err.Error())
		return
	}

	for _, path := range paths {
		p, err := s.store.Load(path)
		if err != nil {
			continue
		}
		if strings.EqualFold(p.Name, name) {
			s.jsonResponse(w, http.StatusOK, p)
			return
		}
	}
	s.errorResponse(w, http.StatusNotFound, "Profile not found: "+name)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
