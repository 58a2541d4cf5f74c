// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume  string `json:"resume,omitempty"`  // Path to resume file (pdf, docx, or txt)
	Job     string `json:"job,omitempty"`     // Path to job description text file
	Profile string `json:"profile,omitempty"` // Path to a saved profile JSON

	// Candidate info (manual entry)
	Name       string   `json:"name,omitempty"`
	Email      string   `json:"email,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Experience string   `json:"experience,omitempty"` // Projects / experience text

	// Output
	Template  string `json:"template,omitempty"`   // modern, classic, or professional
	Format    string `json:"format,omitempty"`     // pdf, docx, or both
	OutputDir string `json:"output_dir,omitempty"` // Directory for generated files

	// Behavior
	Port    int  `json:"port,omitempty"` // HTTP API port (serve command)
	Verbose bool `json:"verbose,omitempty"`
}

// Defaults for unset configuration values
const (
	DefaultTemplate  = string(types.TemplateModern)
	DefaultFormat    = string(types.ExportPDF)
	DefaultOutputDir = "output"
	DefaultPort      = 8080
)

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyDefaults fills unset fields with their default values
func (c *Config) ApplyDefaults() {
	if c.Template == "" {
		c.Template = DefaultTemplate
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Resume != "" && c.Profile != "" {
		return fmt.Errorf("config error: 'resume' and 'profile' are mutually exclusive")
	}

	if c.Template != "" && !types.TemplateStyle(c.Template).Valid() {
		return fmt.Errorf("config error: unknown template %q (expected modern, classic, or professional)", c.Template)
	}
	if c.Format != "" && !types.ExportFormat(c.Format).Valid() {
		return fmt.Errorf("config error: unknown format %q (expected pdf, docx, or both)", c.Format)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	for field, path := range map[string]string{"resume": c.Resume, "job": c.Job, "profile": c.Profile} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", field, path)
		}
	}

	return nil
}
