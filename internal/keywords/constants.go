// Package keywords provides the classical-NLP scoring pipeline: TF-IDF keyword
// extraction over unigrams and bigrams, and ATS keyword matching against a
// fixed list of well-known industry terms.
package keywords

// DefaultStopWords returns the fixed English stop-word list used by the
// tokenizer. Callers receive a fresh copy; the list itself is configuration
// data, not mutable state.
func DefaultStopWords() []string {
	return []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "from", "is", "are", "was", "were", "be", "have",
		"has", "had", "do", "does", "did", "will", "would", "could", "should",
		"may", "might", "must", "can", "this", "that", "these", "those", "i",
		"you", "he", "she", "it", "we", "they", "what", "which", "who", "when",
		"where", "why", "how", "all", "each", "every", "both", "few", "more",
		"most", "other", "some", "such", "no", "nor", "not", "only", "same",
		"so", "than", "too", "very", "as", "if", "just", "about", "into",
	}
}

// DefaultKnownKeywords returns the fixed list of well-known ATS industry
// keywords scanned for verbatim in source text.
func DefaultKnownKeywords() []string {
	return []string{
		"python", "java", "javascript", "sql", "machine learning", "data science",
		"cloud", "aws", "azure", "docker", "kubernetes", "agile", "scrum",
		"project management", "leadership", "communication", "analytics",
		"deep learning", "neural networks", "nlp", "computer vision",
		"tensorflow", "pytorch", "pandas", "numpy",
		"git", "github", "cicd", "rest api", "microservices", "api", "database",
	}
}

const (
	// DefaultMaxTerms is the number of top-ranked terms the extractor returns
	DefaultMaxTerms = 20

	// ATSKeywordCap is the maximum size of the merged ATS keyword set
	ATSKeywordCap = 25

	// knownKeywordScore ranks verbatim-matched known keywords above any
	// TF-IDF-derived score (TF-IDF scores stay well below 1)
	knownKeywordScore = 10.0

	// minTokenLength drops tokens of 2 characters or fewer
	minTokenLength = 3
)
