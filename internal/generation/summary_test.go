package generation

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func keywordSet(terms ...string) types.KeywordSet {
	ks := types.KeywordSet{}
	for i, term := range terms {
		ks.Add(term, float64(len(terms)-i))
	}
	return ks
}

func TestGenerateSummary_ResumeKeywordsOnly(t *testing.T) {
	resume := keywordSet("python", "aws", "docker", "sql")

	summary := GenerateSummary(resume, types.KeywordSet{}, nil)

	assert.Contains(t, summary, "python, aws, docker, sql")
	assert.Contains(t, summary, "Results-driven professional")
}

func TestGenerateSummary_JobOverlapBoostedFirst(t *testing.T) {
	resume := keywordSet("sql", "python", "analytics", "reporting")
	job := keywordSet("python", "terraform", "analytics")

	summary := GenerateSummary(resume, job, nil)

	// Overlapping job terms (python, analytics) lead; resume-only terms follow.
	// Job-only terms (terraform) never enter: the summary describes the candidate.
	idx := strings.Index(summary, "practical exposure to ")
	assert.Greater(t, idx, 0)
	tail := summary[idx+len("practical exposure to "):]
	assert.True(t, strings.HasPrefix(tail, "python, analytics, sql, reporting"), "got: %s", tail)
	assert.NotContains(t, summary, "terraform")
}

func TestGenerateSummary_BudgetCappedAtEight(t *testing.T) {
	resume := keywordSet("a1x", "b2x", "c3x", "d4x", "e5x", "f6x", "g7x", "h8x", "i9x", "j0x")

	summary := GenerateSummary(resume, types.KeywordSet{}, nil)

	assert.Contains(t, summary, "h8x")
	assert.NotContains(t, summary, "i9x")
}

func TestGenerateSummary_FallbackWithSkills(t *testing.T) {
	resume := keywordSet("python", "sql")

	summary := GenerateSummary(resume, types.KeywordSet{}, []string{"Go", "Linux"})

	assert.Contains(t, summary, "Motivated professional")
	assert.Contains(t, summary, "Go, Linux")
}

func TestGenerateSummary_FallbackWithoutSkills(t *testing.T) {
	summary := GenerateSummary(types.KeywordSet{}, types.KeywordSet{}, nil)

	assert.Contains(t, summary, "Motivated professional seeking opportunities")
}
