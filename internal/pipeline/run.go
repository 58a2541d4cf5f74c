// Package pipeline provides the high-level orchestration for the resume
// enhancement process: normalize → extract keywords → match ATS keywords →
// generate summary, bullets, and cover letter → render and export.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/generation"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/keywords"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/profile"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	Profile      *types.Profile
	Template     types.TemplateStyle
	Format       types.ExportFormat
	OutputDir    string
	Capabilities config.Capabilities
	Verbose      bool
	SkipExport   bool // Compute the enhancement only; write no files
	OnProgress   ProgressCallback
}

// RunResult holds the outputs of one enhancement run
type RunResult struct {
	RunID       uuid.UUID
	Enhancement *types.EnhancementResult
	PDFPath     string
	DOCXPath    string
	ProfilePath string
	BundlePath  string
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Message: message})
	}
}

// Run executes the full enhancement pipeline for a profile. Every analysis
// step is a pure function of the profile, so re-running an unchanged profile
// yields an identical EnhancementResult.
func Run(opts RunOptions) (*RunResult, error) {
	if opts.Profile == nil {
		return nil, &EmptyInputError{Field: "profile"}
	}

	printer := observability.NewPrinter(os.Stdout)
	runID := uuid.New()

	// Step 1: Normalize input text
	emitProgress(&opts, "normalize", "Cleaning input text")
	resumeText := ingestion.CleanText(opts.Profile.CombinedText())
	jobText := ingestion.SanitizeHTML(opts.Profile.JobDescription)
	if strings.TrimSpace(resumeText) == "" {
		return nil, &EmptyInputError{Field: "resume text"}
	}

	// Step 2: Extract keywords. Each corpus is scored on its own, so the
	// extractor degenerates to term-frequency ranking per document.
	emitProgress(&opts, "extract", "Extracting keywords")
	extractor := keywords.DefaultExtractor()
	resumeKeywords := extractor.Extract(resumeText)
	var jobKeywords types.KeywordSet
	if jobText != "" {
		jobKeywords = extractor.Extract(jobText)
	}

	// Step 3: Match ATS keywords. Without a job description the resume's own
	// keywords seed the match, mirroring the resume-only enhancement mode.
	emitProgress(&opts, "match", "Matching ATS keywords")
	matcher := keywords.DefaultMatcher()
	seed := jobKeywords
	if jobText == "" {
		seed = resumeKeywords
	}
	atsKeywords := matcher.Match(seed, resumeText)
	mergedResume := keywords.MergeIntoResume(resumeText, atsKeywords)

	// Step 4: Generate text artifacts
	emitProgress(&opts, "generate", "Generating summary, bullets, and cover letter")
	result := &types.EnhancementResult{
		Summary:     generation.GenerateSummary(resumeKeywords, jobKeywords, opts.Profile.Skills),
		Bullets:     generation.GenerateBullets(resumeText, generation.DefaultActionVerbs()),
		ATSKeywords: atsKeywords,
		CoverLetter: generation.GenerateCoverLetter(opts.Profile.Name, atsKeywords, jobText),
		ResumeText:  mergedResume,
	}

	if opts.Verbose {
		printer.PrintKeywords("ATS KEYWORDS", result.ATSKeywords)
		printer.PrintSummary(result.Summary)
		printer.PrintBullets(result.Bullets)
	}

	run := &RunResult{RunID: runID, Enhancement: result}
	if opts.SkipExport {
		return run, nil
	}

	// Step 5: Render documents and assemble the portfolio bundle
	emitProgress(&opts, "export", "Rendering documents")
	if err := exportRun(&opts, run, printer); err != nil {
		return nil, err
	}
	return run, nil
}

// exportRun writes the profile snapshot, resume documents, and bundle
func exportRun(opts *RunOptions, run *RunResult, printer *observability.Printer) error {
	outDir := opts.OutputDir
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	template := opts.Template
	if !template.Valid() {
		template = types.TemplateModern
	}
	result := run.Enhancement

	// Profile snapshot carries the generated summary and cover letter
	snapshot := *opts.Profile
	snapshot.Summary = result.Summary
	snapshot.CoverLetter = result.CoverLetter
	store, err := profile.NewStore(outDir)
	if err != nil {
		return err
	}
	profilePath, err := store.Save(&snapshot)
	if err != nil {
		return err
	}
	run.ProfilePath = profilePath

	data := rendering.Data{
		Name:       opts.Profile.Name,
		Email:      opts.Profile.Email,
		Summary:    result.Summary,
		Bullets:    result.Bullets,
		ResumeText: result.ResumeText,
		Style:      template,
	}
	templateTitle := strings.ToUpper(string(template[:1])) + string(template[1:])

	if opts.Format.WantsPDF() {
		pdfPath := filepath.Join(outDir, "Resume_"+templateTitle+".pdf")
		if err := rendering.RenderPDF(pdfPath, data); err != nil {
			return err
		}
		run.PDFPath = pdfPath
	}

	if opts.Format.WantsDOCX() {
		if opts.Capabilities.DOCX {
			docxPath := filepath.Join(outDir, "Resume_"+templateTitle+".docx")
			if err := rendering.RenderDOCX(docxPath, data); err != nil {
				return err
			}
			run.DOCXPath = docxPath
		} else {
			fmt.Println("Notice: DOCX export unavailable, skipping DOCX output")
		}
	}

	bundlePath, err := export.WriteBundle(outDir, export.BundleInput{
		Name:        opts.Profile.Name,
		Summary:     result.Summary,
		ResumeText:  result.ResumeText,
		CoverLetter: result.CoverLetter,
		PDFPath:     run.PDFPath,
		DOCXPath:    run.DOCXPath,
		ProfilePath: run.ProfilePath,
	}, time.Now())
	if err != nil {
		return err
	}
	run.BundlePath = bundlePath

	if opts.Verbose {
		printer.PrintExports(exportedPaths(run))
	}
	return nil
}

// exportedPaths lists the non-empty output paths of a run
func exportedPaths(run *RunResult) []string {
	paths := make([]string, 0, 4)
	for _, p := range []string{run.PDFPath, run.DOCXPath, run.ProfilePath, run.BundlePath} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
