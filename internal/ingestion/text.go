package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpaceRe = regexp.MustCompile(`[ \t]+`)
	blankLinesRe = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted text while preserving line structure:
// line endings become LF, runs of spaces and tabs collapse to one space,
// trailing whitespace is trimmed, and 3+ consecutive blank lines shrink to 2.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = multiSpaceRe.ReplaceAllString(line, " ")
		cleaned = append(cleaned, strings.TrimRight(line, " "))
	}

	result := strings.Join(cleaned, "\n")
	result = blankLinesRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// FlattenWhitespace collapses all whitespace runs (including newlines) to
// single spaces. Used where text feeds a single-sentence template.
func FlattenWhitespace(content string) string {
	return strings.Join(strings.Fields(content), " ")
}
