package ingestion

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SanitizeHTML reduces HTML content (a pasted or fetched job description) to
// plain text: script/style blocks are dropped, tags are removed, entities are
// decoded, and whitespace is flattened. Input that is not HTML passes through
// with whitespace flattening only.
func SanitizeHTML(content string) string {
	if content == "" {
		return ""
	}
	if !strings.Contains(content, "<") {
		return FlattenWhitespace(content)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return FlattenWhitespace(content)
	}

	doc.Find("script, style, noscript").Remove()
	return FlattenWhitespace(doc.Text())
}
