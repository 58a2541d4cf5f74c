package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/config"
)

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"Python", "AWS", "Docker"}, splitSkills("Python, AWS,Docker"))
	assert.Equal(t, []string{"Go"}, splitSkills(" Go , "))
	assert.Nil(t, splitSkills(""))
}

func TestBuildProfile_FromResumeFile(t *testing.T) {
	dir := t.TempDir()
	resumePath := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte("Developed Python services on AWS."), 0o644))
	jobPath := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte("Python engineer wanted."), 0o644))

	p, err := buildProfile(&config.Config{
		Resume: resumePath,
		Job:    jobPath,
		Name:   "Grace Hopper",
		Email:  "grace@example.com",
		Skills: []string{"COBOL"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Grace Hopper", p.Name)
	assert.Equal(t, "grace@example.com", p.Email)
	assert.Contains(t, p.ResumeText, "Python services")
	assert.Equal(t, "Python engineer wanted.", p.JobDescription)
	assert.Equal(t, []string{"COBOL"}, p.Skills)
}

func TestBuildProfile_FromExperienceText(t *testing.T) {
	p, err := buildProfile(&config.Config{
		Experience: "Built a data pipeline in Go.",
	})
	require.NoError(t, err)

	assert.Equal(t, "Candidate Name", p.Name)
	assert.Equal(t, "Built a data pipeline in Go.", p.ResumeText)
}

func TestBuildProfile_FromSavedProfile(t *testing.T) {
	dir := t.TempDir()
	profilePath := filepath.Join(dir, "profile.json")
	snapshot := `{
  "name": "Grace Hopper",
  "email": "grace@example.com",
  "resume_text": "Developed compilers.",
  "created_at": "2026-03-14T09:26:53Z"
}`
	require.NoError(t, os.WriteFile(profilePath, []byte(snapshot), 0o644))

	p, err := buildProfile(&config.Config{Profile: profilePath})
	require.NoError(t, err)

	assert.Equal(t, "Grace Hopper", p.Name)
	assert.Equal(t, "Developed compilers.", p.ResumeText)
}

func TestBuildProfile_InvalidProfileJSON(t *testing.T) {
	dir := t.TempDir()
	profilePath := filepath.Join(dir, "profile.json")
	require.NoError(t, os.WriteFile(profilePath, []byte(`{"email": "grace@example.com"}`), 0o644))

	_, err := buildProfile(&config.Config{Profile: profilePath})
	assert.Error(t, err)
}
