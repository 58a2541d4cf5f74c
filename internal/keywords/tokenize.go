package keywords

import (
	"regexp"
	"strings"
)

// tokenPattern matches lowercase word tokens, allowing hyphen/underscore
// compounds like "ci-cd" or "rest_api".
var tokenPattern = regexp.MustCompile(`[a-z]+(?:[_-][a-z]+)*`)

// Tokenizer splits text into lowercase word tokens, dropping stop words and
// tokens shorter than three characters.
type Tokenizer struct {
	stopWords map[string]bool
}

// NewTokenizer builds a Tokenizer from the given stop-word list
func NewTokenizer(stopWords []string) *Tokenizer {
	set := make(map[string]bool, len(stopWords))
	for _, w := range stopWords {
		set[w] = true
	}
	return &Tokenizer{stopWords: set}
}

// Tokenize returns the filtered token stream for text, preserving order
func (t *Tokenizer) Tokenize(text string) []string {
	matches := tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		if len(m) < minTokenLength || t.stopWords[m] {
			continue
		}
		tokens = append(tokens, m)
	}
	return tokens
}

// Ngrams joins each run of n consecutive tokens with spaces. Returns nil when
// the token stream is shorter than the window.
func Ngrams(tokens []string, n int) []string {
	if n < 1 || len(tokens) < n {
		return nil
	}
	grams := make([]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		grams = append(grams, strings.Join(tokens[i:i+n], " "))
	}
	return grams
}
