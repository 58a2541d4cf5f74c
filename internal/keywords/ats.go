package keywords

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Matcher merges TF-IDF-derived job keywords with well-known industry
// keywords found verbatim in source text.
type Matcher struct {
	known []string
	cap   int
}

// NewMatcher builds a Matcher over the given known-keyword list
func NewMatcher(known []string, resultCap int) *Matcher {
	if resultCap <= 0 {
		resultCap = ATSKeywordCap
	}
	return &Matcher{known: known, cap: resultCap}
}

// DefaultMatcher builds a Matcher with the default industry keyword list
func DefaultMatcher() *Matcher {
	return NewMatcher(DefaultKnownKeywords(), ATSKeywordCap)
}

// Match scans sourceText (case-insensitive substring match) for each known
// keyword, assigns matches a fixed high score so they rank above TF-IDF
// terms, unions them with jobKeywords, deduplicates case-insensitively, and
// truncates to the configured cap by combined score.
func (m *Matcher) Match(jobKeywords types.KeywordSet, sourceText string) types.KeywordSet {
	result := types.KeywordSet{}

	lower := strings.ToLower(sourceText)
	for _, kw := range m.known {
		if strings.Contains(lower, kw) {
			result.Add(kw, knownKeywordScore)
		}
	}

	for _, kw := range jobKeywords.Keywords {
		result.Add(kw.Term, kw.Score)
	}

	sort.SliceStable(result.Keywords, func(i, j int) bool {
		return result.Keywords[i].Score > result.Keywords[j].Score
	})
	result.Truncate(m.cap)
	return result
}

// MergeIntoResume weaves ATS keywords missing from resumeText into an
// appended skills section (capped at 10 terms). Text that already covers
// every keyword is returned unchanged.
func MergeIntoResume(resumeText string, ats types.KeywordSet) string {
	if ats.Len() == 0 {
		return resumeText
	}

	lower := strings.ToLower(resumeText)
	missing := make([]string, 0, ats.Len())
	for _, kw := range ats.Keywords {
		if !strings.Contains(lower, strings.ToLower(kw.Term)) {
			missing = append(missing, kw.Term)
		}
	}
	if len(missing) == 0 {
		return resumeText
	}
	if len(missing) > 10 {
		missing = missing[:10]
	}

	heading := "Relevant Skills"
	if strings.Contains(lower, "skills") || strings.Contains(lower, "technical") {
		heading = "Additional Skills"
	}
	return resumeText + "\n\n" + heading + ": " + strings.Join(missing, ", ")
}
