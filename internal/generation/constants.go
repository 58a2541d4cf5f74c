// Package generation produces the templated text artifacts of an enhancement
// run: the professional summary, STAR-format achievement bullets, and the
// cover letter. Every function here is a pure function of its inputs.
package generation

// DefaultActionVerbs returns the fixed action-verb list used to rank
// experience sentences for bullet generation.
func DefaultActionVerbs() []string {
	return []string{
		"developed", "implemented", "designed", "created", "managed", "led",
		"improved", "optimized", "achieved", "increased", "reduced", "delivered",
	}
}

const (
	// MaxBullets caps the generated bullet list
	MaxBullets = 5

	// minSentenceLength drops sentence fragments too short to be achievements
	minSentenceLength = 20

	// summaryTermBudget is the number of keywords woven into the summary
	summaryTermBudget = 8

	// minSummaryTerms below which the generic fallback summary is used
	minSummaryTerms = 3

	// bulletMarker prefixes every generated bullet
	bulletMarker = "• "
)

// genericBullets are the fixed fallback achievements used when no sentence in
// the experience text qualifies. Output is never empty.
var genericBullets = []string{
	bulletMarker + "Applied technical skills to solve complex problems and deliver measurable results.",
	bulletMarker + "Collaborated with team members to achieve project objectives and meet deadlines.",
	bulletMarker + "Demonstrated strong problem-solving abilities and attention to detail.",
}
