package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/pipeline"
	"github.com/jonathan/resume-builder/internal/profile"
	"github.com/jonathan/resume-builder/internal/types"
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance",
	Short: "Run the full enhancement pipeline end-to-end",
	Long: `Analyzes a resume against a job description and generates an ATS-enhanced resume, professional summary, bullet points, and cover letter, exported as PDF/DOCX documents plus a portfolio ZIP.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runEnhanceCmd,
}

var (
	enhanceConfigPath string
	enhanceResume     string
	enhanceJob        string
	enhanceProfile    string
	enhanceName       string
	enhanceEmail      string
	enhanceSkills     string
	enhanceExperience string
	enhanceTemplate   string
	enhanceFormat     string
	enhanceOutputDir  string
	enhanceVerbose    bool
)

func init() {
	// Config file flag (processed first)
	enhanceCmd.Flags().StringVar(&enhanceConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	enhanceCmd.Flags().StringVarP(&enhanceResume, "resume", "r", "", "Path to resume file (pdf, docx, or txt; mutually exclusive with --profile)")
	enhanceCmd.Flags().StringVarP(&enhanceJob, "job", "j", "", "Path to job description text file")
	enhanceCmd.Flags().StringVarP(&enhanceProfile, "profile", "p", "", "Path to a saved profile JSON (mutually exclusive with --resume)")
	enhanceCmd.Flags().StringVarP(&enhanceName, "name", "n", "", "Candidate name")
	enhanceCmd.Flags().StringVar(&enhanceEmail, "email", "", "Candidate email")
	enhanceCmd.Flags().StringVar(&enhanceSkills, "skills", "", "Comma-separated list of skills")
	enhanceCmd.Flags().StringVar(&enhanceExperience, "experience", "", "Projects and experience text (used when no resume file is given)")
	enhanceCmd.Flags().StringVarP(&enhanceTemplate, "template", "t", "", "Resume template: modern, classic, or professional")
	enhanceCmd.Flags().StringVarP(&enhanceFormat, "format", "f", "", "Export format: pdf, docx, or both")
	enhanceCmd.Flags().StringVarP(&enhanceOutputDir, "output", "o", "", "Directory for generated files")
	enhanceCmd.Flags().BoolVarP(&enhanceVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(enhanceCmd)
}

func runEnhanceCmd(cmd *cobra.Command, _ []string) error {
	// Step 1: Load config file if provided
	var cfg config.Config
	if enhanceConfigPath != "" {
		loadedCfg, err := config.LoadConfig(enhanceConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		cfg = *loadedCfg
		if enhanceVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", enhanceConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = enhanceResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = enhanceJob
	}
	if cmd.Flags().Changed("profile") {
		cfg.Profile = enhanceProfile
	}
	if cmd.Flags().Changed("name") {
		cfg.Name = enhanceName
	}
	if cmd.Flags().Changed("email") {
		cfg.Email = enhanceEmail
	}
	if cmd.Flags().Changed("skills") {
		cfg.Skills = splitSkills(enhanceSkills)
	}
	if cmd.Flags().Changed("experience") {
		cfg.Experience = enhanceExperience
	}
	if cmd.Flags().Changed("template") {
		cfg.Template = enhanceTemplate
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = enhanceFormat
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir = enhanceOutputDir
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = enhanceVerbose
	}

	// Step 3: Apply defaults and validate the merged configuration
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Resume == "" && cfg.Profile == "" && cfg.Experience == "" {
		return fmt.Errorf("one of --resume, --profile, or --experience must be provided (via flag or config)")
	}

	// Step 4: Assemble the candidate profile
	p, err := buildProfile(&cfg)
	if err != nil {
		return err
	}

	// Step 5: Run the pipeline
	opts := pipeline.RunOptions{
		Profile:      p,
		Template:     types.TemplateStyle(cfg.Template),
		Format:       types.ExportFormat(cfg.Format),
		OutputDir:    cfg.OutputDir,
		Capabilities: config.DetectCapabilities(),
		Verbose:      cfg.Verbose,
	}
	if cfg.Verbose {
		opts.OnProgress = func(ev pipeline.ProgressEvent) {
			_, _ = fmt.Fprintf(os.Stdout, "[%s] %s\n", ev.Step, ev.Message)
		}
	}

	run, err := pipeline.Run(opts)
	if err != nil {
		return err
	}

	fmt.Printf("Run %s complete.\n", run.RunID)
	printArtifact("Resume PDF", run.PDFPath)
	printArtifact("Resume DOCX", run.DOCXPath)
	printArtifact("Profile", run.ProfilePath)
	printArtifact("Portfolio bundle", run.BundlePath)
	return nil
}

// buildProfile assembles the candidate profile from a saved profile, a resume
// file, or manual entry fields, in that order of precedence.
func buildProfile(cfg *config.Config) (*types.Profile, error) {
	var p *types.Profile

	switch {
	case cfg.Profile != "":
		data, err := os.ReadFile(cfg.Profile)
		if err != nil {
			return nil, fmt.Errorf("failed to read profile %s: %w", cfg.Profile, err)
		}
		loaded, err := profile.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to load profile: %w", err)
		}
		p = loaded
	case cfg.Resume != "":
		doc, err := ingestion.IngestFromFile(cfg.Resume)
		if err != nil {
			return nil, err
		}
		p = &types.Profile{ResumeText: doc.RawText}
	default:
		p = &types.Profile{ResumeText: cfg.Experience}
	}

	// Manual fields supplement whatever source the resume text came from
	if cfg.Name != "" {
		p.Name = cfg.Name
	}
	if p.Name == "" {
		p.Name = "Candidate Name"
	}
	if cfg.Email != "" {
		p.Email = cfg.Email
	}
	if len(cfg.Skills) > 0 {
		p.Skills = append(p.Skills, cfg.Skills...)
	}

	if cfg.Job != "" {
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return nil, fmt.Errorf("failed to read job description %s: %w", cfg.Job, err)
		}
		p.JobDescription = string(data)
	}
	return p, nil
}

func splitSkills(raw string) []string {
	var skills []string
	for _, skill := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(skill); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

func printArtifact(label, path string) {
	if path != "" {
		fmt.Printf("  %s: %s\n", label, path)
	}
}
