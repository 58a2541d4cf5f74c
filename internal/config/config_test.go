package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, `{
		"name": "Ada Lovelace",
		"email": "ada@example.com",
		"skills": ["Python", "AWS"],
		"template": "classic",
		"format": "both",
		"output_dir": "out",
		"port": 9090
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", cfg.Name)
	assert.Equal(t, []string{"Python", "AWS"}, cfg.Skills)
	assert.Equal(t, "classic", cfg.Template)
	assert.Equal(t, "both", cfg.Format)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_BadJSON(t *testing.T) {
	path := writeConfigFile(t, `{not json`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, "modern", cfg.Template)
	assert.Equal(t, "pdf", cfg.Format)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, 8080, cfg.Port)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{Template: "classic", Port: 9000}
	cfg.ApplyDefaults()

	assert.Equal(t, "classic", cfg.Template)
	assert.Equal(t, 9000, cfg.Port)
}

func TestValidate_MutuallyExclusiveInputs(t *testing.T) {
	cfg := &Config{Resume: "a.pdf", Profile: "b.json"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_UnknownTemplate(t *testing.T) {
	cfg := &Config{Template: "sparkly"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_UnknownFormat(t *testing.T) {
	cfg := &Config{Format: "odt"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingInputFile(t *testing.T) {
	cfg := &Config{Resume: filepath.Join(t.TempDir(), "nope.pdf")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidate_ExistingFilesPass(t *testing.T) {
	dir := t.TempDir()
	resume := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(resume, []byte("text"), 0o644))

	cfg := &Config{Resume: resume, Template: "modern", Format: "pdf"}
	assert.NoError(t, cfg.Validate())
}

func TestDetectCapabilities(t *testing.T) {
	caps := DetectCapabilities()
	assert.True(t, caps.DOCX)
}
