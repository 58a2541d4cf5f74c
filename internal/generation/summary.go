package generation

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// GenerateSummary combines top resume keywords (and job keywords, when a job
// description was provided) into a short templated professional summary.
//
// Job keywords that also appear among the resume keywords are boosted to the
// front; the remainder of the 8-term budget fills from resume-only terms in
// rank order. With fewer than 3 usable keywords the generic fallback summary
// is returned, naming only the candidate's declared skills.
func GenerateSummary(resumeKeywords, jobKeywords types.KeywordSet, skills []string) string {
	terms := blendSummaryTerms(resumeKeywords, jobKeywords)

	if len(terms) < minSummaryTerms {
		return genericSummary(skills)
	}

	return "Results-driven professional with practical exposure to " +
		strings.Join(terms, ", ") +
		". Possesses strong analytical thinking, adaptability, and a continuous learning mindset. " +
		"Actively seeking opportunities to contribute to impactful projects and grow professionally."
}

// blendSummaryTerms applies the blending policy: overlapping job terms first
// (in job rank order), resume terms fill the remainder.
func blendSummaryTerms(resumeKeywords, jobKeywords types.KeywordSet) []string {
	terms := make([]string, 0, summaryTermBudget)
	used := make(map[string]bool, summaryTermBudget)

	take := func(term string) {
		lower := strings.ToLower(term)
		if len(terms) < summaryTermBudget && !used[lower] {
			terms = append(terms, lower)
			used[lower] = true
		}
	}

	for _, kw := range jobKeywords.Keywords {
		if resumeKeywords.Contains(kw.Term) {
			take(kw.Term)
		}
	}
	for _, kw := range resumeKeywords.Keywords {
		take(kw.Term)
	}

	return terms
}

// genericSummary is the soft-failure summary for thin input
func genericSummary(skills []string) string {
	if len(skills) > 0 {
		return "Motivated professional with a foundation in " + strings.Join(skills, ", ") +
			", seeking opportunities to apply skills, gain professional experience, " +
			"and contribute effectively to organizational goals."
	}
	return "Motivated professional seeking opportunities to apply skills, " +
		"gain professional experience, and contribute effectively to organizational goals."
}
