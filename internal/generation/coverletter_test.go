package generation

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestGenerateCoverLetter_WithJobDescription(t *testing.T) {
	ats := keywordSet("python", "aws", "docker", "sql", "git", "agile")

	letter := GenerateCoverLetter("Ada Lovelace", ats, "Looking for a Python developer")

	assert.Contains(t, letter, "Dear Hiring Manager,")
	assert.Contains(t, letter, "python, aws, docker, sql, git")
	assert.NotContains(t, letter, "agile")
	assert.True(t, strings.HasSuffix(letter, "Sincerely,\nAda Lovelace"))
}

func TestGenerateCoverLetter_WithoutJobDescription(t *testing.T) {
	ats := keywordSet("python", "aws", "docker", "sql")

	letter := GenerateCoverLetter("Ada Lovelace", ats, "")

	assert.Contains(t, letter, "interest in the position")
	assert.Contains(t, letter, "python, aws, docker")
	assert.NotContains(t, letter, "sql")
}

func TestGenerateCoverLetter_EmptyName(t *testing.T) {
	letter := GenerateCoverLetter("", types.KeywordSet{}, "")

	assert.Contains(t, letter, "Sincerely,\nYour Name")
	assert.Contains(t, letter, "relevant field")
}

func TestGenerateCoverLetter_NoKeywordsWithJob(t *testing.T) {
	letter := GenerateCoverLetter("Ada", types.KeywordSet{}, "Some job description")

	assert.Contains(t, letter, "relevant skills")
}
