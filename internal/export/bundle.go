// Package export assembles the portfolio bundle: a ZIP archive holding the
// rendered resume documents plus plain-text cover letter, summary, and resume
// content files.
package export

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// BundleInput holds everything that goes into a portfolio archive. Document
// paths are optional; empty paths are skipped.
type BundleInput struct {
	Name        string
	Summary     string
	ResumeText  string
	CoverLetter string
	PDFPath     string
	DOCXPath    string
	ProfilePath string
}

// WriteBundle creates Portfolio_<Name>_<YYYYMMDD>.zip in dir and returns its
// path. The archive is written complete-then-close; on error the partial file
// is removed.
func WriteBundle(dir string, in BundleInput, now time.Time) (string, error) {
	path := filepath.Join(dir, bundleName(in.Name, now))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create bundle %s: %w", path, err)
	}

	if err := writeBundleContents(file, in); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write bundle %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to close bundle %s: %w", path, err)
	}
	return path, nil
}

func writeBundleContents(w io.Writer, in BundleInput) error {
	zw := zip.NewWriter(w)
	slug := nameSlug(in.Name)

	if in.PDFPath != "" {
		if err := copyIntoZip(zw, in.PDFPath, "Resume_"+slug+".pdf"); err != nil {
			return err
		}
	}
	if in.DOCXPath != "" {
		if err := copyIntoZip(zw, in.DOCXPath, "Resume_"+slug+".docx"); err != nil {
			return err
		}
	}
	if in.ProfilePath != "" {
		if err := copyIntoZip(zw, in.ProfilePath, "Profile.json"); err != nil {
			return err
		}
	}

	textMembers := []struct {
		name    string
		content string
	}{
		{"Cover_Letter.txt", in.CoverLetter},
		{"Professional_Summary.txt", in.Summary},
		{"Resume_Content.txt", in.ResumeText},
	}
	for _, member := range textMembers {
		if member.content == "" {
			continue
		}
		entry, err := zw.Create(member.name)
		if err != nil {
			return err
		}
		if _, err := entry.Write([]byte(member.content)); err != nil {
			return err
		}
	}

	return zw.Close()
}

// copyIntoZip adds a file on disk to the archive under entryName
func copyIntoZip(zw *zip.Writer, path, entryName string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	entry, err := zw.Create(entryName)
	if err != nil {
		return err
	}
	_, err = io.Copy(entry, src)
	return err
}

// bundleName builds Portfolio_<Name>_<YYYYMMDD>.zip
func bundleName(name string, now time.Time) string {
	return fmt.Sprintf("Portfolio_%s_%s.zip", nameSlug(name), now.Format("20060102"))
}

func nameSlug(name string) string {
	slug := strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	if slug == "" {
		slug = "Candidate"
	}
	return slug
}
