package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize_DropsStopWordsAndShortTokens(t *testing.T) {
	tok := NewTokenizer(DefaultStopWords())

	tokens := tok.Tokenize("The API is in Go and AWS for me")

	// "the", "is", "in", "and", "for" are stop words; "go", "me" are too short
	assert.Equal(t, []string{"api", "aws"}, tokens)
}

func TestTokenize_CompoundTokens(t *testing.T) {
	tok := NewTokenizer(nil)

	tokens := tok.Tokenize("ci-cd pipelines and rest_api design")

	assert.Contains(t, tokens, "ci-cd")
	assert.Contains(t, tokens, "rest_api")
}

func TestNgrams(t *testing.T) {
	grams := Ngrams([]string{"rest", "api", "design"}, 2)
	assert.Equal(t, []string{"rest api", "api design"}, grams)

	assert.Nil(t, Ngrams([]string{"solo"}, 2))
	assert.Nil(t, Ngrams(nil, 2))
}

func TestExtract_EmptyCorpus(t *testing.T) {
	set := DefaultExtractor().Extract("")
	assert.Equal(t, 0, set.Len())
}

func TestExtract_ScenarioResumeTerms(t *testing.T) {
	set := DefaultExtractor().Extract("Built REST API using Python and AWS Lambda for 3 years")

	terms := set.Terms()
	assert.Contains(t, terms, "python")
	assert.Contains(t, terms, "aws")
	assert.Contains(t, terms, "rest api")
}

func TestExtract_CapAndUniqueness(t *testing.T) {
	corpus := strings.Repeat("python java sql docker aws azure cloud agile scrum analytics leadership communication ", 3)
	set := NewExtractor(DefaultStopWords(), 10).Extract(corpus)

	assert.LessOrEqual(t, set.Len(), 10)

	seen := make(map[string]bool)
	for _, kw := range set.Keywords {
		lower := strings.ToLower(kw.Term)
		assert.False(t, seen[lower], "duplicate term %q", kw.Term)
		seen[lower] = true
		assert.GreaterOrEqual(t, kw.Score, 0.0)
	}
}

func TestExtract_FrequencyRanksFirst(t *testing.T) {
	set := DefaultExtractor().Extract("docker docker docker python kubernetes")

	assert.Equal(t, "docker", set.Keywords[0].Term)
}

func TestExtract_TiesKeepFirstOccurrenceOrder(t *testing.T) {
	set := DefaultExtractor().Extract("alpha beta gamma")

	// All terms appear once; order must match first occurrence
	terms := set.Terms()
	assert.Equal(t, "alpha", terms[0])
	assert.Equal(t, "beta", terms[1])
	assert.Equal(t, "gamma", terms[2])
}

func TestExtract_SingleTokenCorpusYieldsUnigramsOnly(t *testing.T) {
	set := DefaultExtractor().Extract("python")

	assert.Equal(t, []string{"python"}, set.Terms())
}

func TestExtract_BackgroundCorpusDemotesCommonTerms(t *testing.T) {
	// "python" also appears in the background document, "redis" does not,
	// so IDF should rank "redis" above "python" despite equal frequency.
	set := DefaultExtractor().Extract("python redis", "python everywhere")

	terms := set.Terms()
	assert.Less(t, indexOf(terms, "redis"), indexOf(terms, "python"))
}

func TestExtract_Deterministic(t *testing.T) {
	corpus := "Built REST API using Python and AWS Lambda for 3 years"
	first := DefaultExtractor().Extract(corpus)
	second := DefaultExtractor().Extract(corpus)

	assert.Equal(t, first, second)
}

func indexOf(terms []string, term string) int {
	for i, t := range terms {
		if t == term {
			return i
		}
	}
	return -1
}
