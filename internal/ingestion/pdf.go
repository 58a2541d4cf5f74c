package ingestion

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractPDFText extracts plain text from PDF bytes, page by page.
// Pages that yield no text are skipped; a document that yields no text at all
// (image-only or encrypted) is reported as an ExtractionError so the caller
// can halt the pipeline run before analysis.
func ExtractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Path: "upload.pdf", Message: "failed to read PDF", Cause: err}
	}

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	result := strings.TrimSpace(sb.String())
	if result == "" {
		return "", &ExtractionError{Path: "upload.pdf", Message: "no extractable text (image-only or encrypted PDF)"}
	}
	return result, nil
}
