package keywords

import (
	"math"
	"sort"

	"github.com/jonathan/resume-builder/internal/types"
)

// Extractor scores a text corpus by term frequency over unigrams and bigrams,
// scaled by inverse document frequency when background documents are supplied.
// Extractors hold only configuration; calls are pure functions of their inputs.
type Extractor struct {
	tokenizer *Tokenizer
	maxTerms  int
}

// NewExtractor builds an Extractor with the given stop-word list and result cap
func NewExtractor(stopWords []string, maxTerms int) *Extractor {
	if maxTerms <= 0 {
		maxTerms = DefaultMaxTerms
	}
	return &Extractor{
		tokenizer: NewTokenizer(stopWords),
		maxTerms:  maxTerms,
	}
}

// DefaultExtractor builds an Extractor with the default stop words and cap
func DefaultExtractor() *Extractor {
	return NewExtractor(DefaultStopWords(), DefaultMaxTerms)
}

// Extract returns the top-ranked terms of corpus. With no background
// documents the score degenerates to pure term frequency; with background
// documents each term's frequency is scaled by smoothed inverse document
// frequency across corpus plus background. Ties keep first-occurrence order.
// An empty corpus yields an empty set, not an error.
func (e *Extractor) Extract(corpus string, background ...string) types.KeywordSet {
	tokens := e.tokenizer.Tokenize(corpus)
	if len(tokens) == 0 {
		return types.KeywordSet{}
	}

	// Candidate terms in first-occurrence order. A corpus shorter than the
	// bigram window contributes unigrams only.
	candidates := append(tokens, Ngrams(tokens, 2)...)

	counts := make(map[string]int, len(candidates))
	order := make([]string, 0, len(candidates))
	for _, term := range candidates {
		if counts[term] == 0 {
			order = append(order, term)
		}
		counts[term]++
	}

	idf := e.inverseDocumentFrequency(order, corpus, background)

	total := float64(len(candidates))
	set := types.KeywordSet{}
	for _, term := range order {
		tf := float64(counts[term]) / total
		set.Add(term, tf*idf[term])
	}

	// Stable sort preserves first-occurrence order under equal scores
	sort.SliceStable(set.Keywords, func(i, j int) bool {
		return set.Keywords[i].Score > set.Keywords[j].Score
	})
	set.Truncate(e.maxTerms)
	return set
}

// inverseDocumentFrequency computes smoothed IDF for each term across the
// corpus and background documents: ln((1+N)/(1+df)) + 1. With no background
// documents every term scores exactly 1, so ranking reduces to term frequency.
func (e *Extractor) inverseDocumentFrequency(terms []string, corpus string, background []string) map[string]float64 {
	docs := make([]map[string]bool, 0, len(background)+1)
	docs = append(docs, e.termSet(corpus))
	for _, doc := range background {
		docs = append(docs, e.termSet(doc))
	}

	totalDocs := float64(len(docs))
	idf := make(map[string]float64, len(terms))
	for _, term := range terms {
		df := 0
		for _, doc := range docs {
			if doc[term] {
				df++
			}
		}
		idf[term] = math.Log((1+totalDocs)/(1+float64(df))) + 1
	}
	return idf
}

// termSet returns the set of unigram and bigram terms present in a document
func (e *Extractor) termSet(doc string) map[string]bool {
	tokens := e.tokenizer.Tokenize(doc)
	set := make(map[string]bool, len(tokens)*2)
	for _, tok := range tokens {
		set[tok] = true
	}
	for _, gram := range Ngrams(tokens, 2) {
		set[gram] = true
	}
	return set
}
