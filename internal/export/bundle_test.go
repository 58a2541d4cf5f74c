package export

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteBundle_AllMembers(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "resume.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.4 fake"), 0o644))

	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	path, err := WriteBundle(dir, BundleInput{
		Name:        "Ada Lovelace",
		Summary:     "summary text",
		ResumeText:  "resume text",
		CoverLetter: "cover letter text",
		PDFPath:     pdfPath,
	}, now)
	require.NoError(t, err)
	assert.Equal(t, "Portfolio_Ada_Lovelace_20260314.zip", filepath.Base(path))

	members := readZipMembers(t, path)
	assert.Equal(t, "%PDF-1.4 fake", members["Resume_Ada_Lovelace.pdf"])
	assert.Equal(t, "cover letter text", members["Cover_Letter.txt"])
	assert.Equal(t, "summary text", members["Professional_Summary.txt"])
	assert.Equal(t, "resume text", members["Resume_Content.txt"])
}

func TestWriteBundle_SkipsEmptyInputs(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	path, err := WriteBundle(dir, BundleInput{Summary: "only summary"}, now)
	require.NoError(t, err)
	assert.Equal(t, "Portfolio_Candidate_20260314.zip", filepath.Base(path))

	members := readZipMembers(t, path)
	assert.Len(t, members, 1)
	assert.Equal(t, "only summary", members["Professional_Summary.txt"])
}

func TestWriteBundle_MissingDocumentFails(t *testing.T) {
	dir := t.TempDir()
	_, err := WriteBundle(dir, BundleInput{
		Name:    "Ada",
		PDFPath: filepath.Join(dir, "does-not-exist.pdf"),
	}, time.Now())
	require.Error(t, err)

	// The partial archive must not remain on disk
	leftovers, globErr := filepath.Glob(filepath.Join(dir, "*.zip"))
	require.NoError(t, globErr)
	assert.Empty(t, leftovers)
}

func readZipMembers(t *testing.T, path string) map[string]string {
	t.Helper()
	reader, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()

	members := make(map[string]string)
	for _, f := range reader.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		members[f.Name] = string(data)
	}
	return members
}
