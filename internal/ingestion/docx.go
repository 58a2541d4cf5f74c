package ingestion

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var xmlTagRe = regexp.MustCompile(`<[^>]+>`)

// ExtractDOCXText extracts plain text from DOCX bytes
func ExtractDOCXText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Path: "upload.docx", Message: "failed to parse DOCX", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()

	// GetContent returns raw document XML; paragraph boundaries become
	// newlines and all remaining markup is stripped.
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = xmlTagRe.ReplaceAllString(content, "")

	result := strings.TrimSpace(content)
	if result == "" {
		return "", &ExtractionError{Path: "upload.docx", Message: "no extractable text"}
	}
	return result, nil
}
