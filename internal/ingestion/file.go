package ingestion

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// IngestFromFile reads a resume file, extracts its text by format (pdf, docx,
// or plain text) and returns a cleaned Document. The format is chosen by file
// extension.
func IngestFromFile(path string) (*types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ExtractionError{Path: path, Message: "failed to read file", Cause: err}
	}
	return IngestBytes(path, data)
}

// IngestBytes extracts text from raw file bytes, dispatching on the extension
// of name. Used directly by the HTTP upload handler.
func IngestBytes(name string, data []byte) (*types.Document, error) {
	var text string
	var err error

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".pdf":
		text, err = ExtractPDFText(data)
	case ".docx":
		text, err = ExtractDOCXText(data)
	case ".txt", ".text", "":
		text = string(data)
	default:
		return nil, &UnsupportedFormatError{Path: name, Format: ext}
	}
	if err != nil {
		return nil, err
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return nil, &ExtractionError{Path: name, Message: "document contains no text"}
	}

	return &types.Document{RawText: cleaned, Source: types.SourceUploadedFile}, nil
}
