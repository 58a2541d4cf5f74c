package rendering

import (
	"github.com/go-pdf/fpdf"

	"github.com/jonathan/resume-builder/internal/types"
)

// Data holds the content rendered into a resume document
type Data struct {
	Name       string
	Email      string
	Summary    string
	Bullets    []string
	ResumeText string
	Style      types.TemplateStyle
}

// withDefaults fills placeholder values for missing fields
func (d Data) withDefaults() Data {
	if d.Name == "" {
		d.Name = "Candidate Name"
	}
	if d.Email == "" {
		d.Email = "email@example.com"
	}
	if len(d.ResumeText) > maxBodyChars {
		d.ResumeText = d.ResumeText[:maxBodyChars]
	}
	return d
}

// RenderPDF writes a resume PDF to path using the template layout selected
// by data.Style. Text is sanitized to the latin-1 repertoire of the core
// fonts before rendering.
func RenderPDF(path string, data Data) error {
	data = data.withDefaults()
	style := DescriptorFor(data.Style)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont(style.NameFont, "B", style.NameSize)
	pdf.CellFormat(0, 12, SanitizeForPDF(data.Name), "", 1, "", false, 0, "")
	pdf.SetFont(style.BodyFont, "", style.ContactSize)
	pdf.CellFormat(0, 8, SanitizeForPDF(data.Email), "", 1, "", false, 0, "")
	pdf.Ln(6)

	writeHeading := func(text string) {
		pdf.SetFont(style.NameFont, "B", style.HeadingSize)
		pdf.CellFormat(0, 10, style.heading(text), "", 1, "", false, 0, "")
	}

	writeHeading("Professional Summary")
	pdf.SetFont(style.BodyFont, "", style.BodySize)
	pdf.MultiCell(0, 6, SanitizeForPDF(data.Summary), "", "", false)

	if len(data.Bullets) > 0 {
		pdf.Ln(4)
		writeHeading("Key Achievements")
		pdf.SetFont(style.BodyFont, "", style.BodySize)
		for _, bullet := range data.Bullets {
			pdf.MultiCell(0, 5, SanitizeForPDF(bullet), "", "", false)
		}
	}

	pdf.Ln(4)
	writeHeading("Experience & Skills")
	pdf.SetFont(style.BodyFont, "", style.BodySize)
	pdf.MultiCell(0, 5, SanitizeForPDF(data.ResumeText), "", "", false)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return &RenderError{Format: "pdf", Path: path, Message: "failed to write document", Cause: err}
	}
	return nil
}
