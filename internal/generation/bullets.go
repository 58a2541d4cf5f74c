package generation

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

var sentenceSplitRe = regexp.MustCompile(`[.!?]+\s+`)

// verbPosition scores where an action verb appears in a sentence
const (
	verbAtStart  = 2
	verbAnywhere = 1
	verbAbsent   = 0
)

// GenerateBullets splits experience text into sentence-like units, ranks them
// by action-verb presence (a verb in the first three words ranks highest,
// a verb anywhere ranks next, verbless sentences are deprioritized but kept),
// and returns up to 5 formatted bullets. When no sentence qualifies, the
// fixed generic achievement bullets are returned; output is never empty.
func GenerateBullets(experienceText string, actionVerbs []string) []string {
	type ranked struct {
		text  string
		score int
	}

	sentences := sentenceSplitRe.Split(experienceText, -1)
	candidates := make([]ranked, 0, len(sentences))
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if len(s) < minSentenceLength {
			continue
		}
		candidates = append(candidates, ranked{text: s, score: scoreSentence(s, actionVerbs)})
	}

	if len(candidates) == 0 {
		out := make([]string, len(genericBullets))
		copy(out, genericBullets)
		return out
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > MaxBullets {
		candidates = candidates[:MaxBullets]
	}

	bullets := make([]string, 0, len(candidates))
	for _, c := range candidates {
		bullets = append(bullets, formatBullet(c.text))
	}
	return bullets
}

// scoreSentence ranks a sentence by action-verb position
func scoreSentence(sentence string, actionVerbs []string) int {
	lower := strings.ToLower(sentence)
	words := strings.Fields(lower)

	head := words
	if len(head) > 3 {
		head = head[:3]
	}
	for _, verb := range actionVerbs {
		for _, w := range head {
			if strings.Trim(w, ",;:") == verb {
				return verbAtStart
			}
		}
	}
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			return verbAnywhere
		}
	}
	return verbAbsent
}

// formatBullet capitalizes the sentence, prefixes the bullet marker, and
// guarantees terminal punctuation.
func formatBullet(sentence string) string {
	runes := []rune(sentence)
	runes[0] = unicode.ToUpper(runes[0])
	out := bulletMarker + string(runes)
	if !strings.HasSuffix(out, ".") && !strings.HasSuffix(out, "!") && !strings.HasSuffix(out, "?") {
		out += "."
	}
	return out
}
