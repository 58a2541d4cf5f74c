// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Keyword represents a single scored term extracted from a text corpus
type Keyword struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// KeywordSet is an ordered collection of unique scored terms, ranked
// descending by score. Ties keep first-seen order. Terms are unique
// case-insensitively.
type KeywordSet struct {
	Keywords []Keyword `json:"keywords"`
}

// Len returns the number of keywords in the set
func (ks *KeywordSet) Len() int {
	if ks == nil {
		return 0
	}
	return len(ks.Keywords)
}

// Terms returns the ordered terms without scores
func (ks *KeywordSet) Terms() []string {
	if ks == nil || len(ks.Keywords) == 0 {
		return nil
	}
	terms := make([]string, len(ks.Keywords))
	for i, kw := range ks.Keywords {
		terms[i] = kw.Term
	}
	return terms
}

// TopTerms returns up to n leading terms
func (ks *KeywordSet) TopTerms(n int) []string {
	terms := ks.Terms()
	if len(terms) > n {
		terms = terms[:n]
	}
	return terms
}

// Contains reports whether the set already holds term (case-insensitive)
func (ks *KeywordSet) Contains(term string) bool {
	if ks == nil {
		return false
	}
	lower := strings.ToLower(term)
	for _, kw := range ks.Keywords {
		if strings.ToLower(kw.Term) == lower {
			return true
		}
	}
	return false
}

// Add appends a keyword unless its term is already present (case-insensitive).
// Scores must be non-negative; negative scores are clamped to zero.
func (ks *KeywordSet) Add(term string, score float64) {
	if term == "" || ks.Contains(term) {
		return
	}
	if score < 0 {
		score = 0
	}
	ks.Keywords = append(ks.Keywords, Keyword{Term: term, Score: score})
}

// Truncate caps the set at max keywords, dropping the lowest-ranked tail
func (ks *KeywordSet) Truncate(max int) {
	if ks == nil || max < 0 || len(ks.Keywords) <= max {
		return
	}
	ks.Keywords = ks.Keywords[:max]
}
