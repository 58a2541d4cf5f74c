package rendering

import (
	"io"
	"os"
	"strconv"
	"strings"

	godocx "github.com/fumiama/go-docx"
)

// RenderDOCX writes a resume DOCX to path. DOCX output is Unicode-capable,
// so text is rendered as-is without the latin-1 sanitization pass.
func RenderDOCX(path string, data Data) error {
	data = data.withDefaults()

	file, err := os.Create(path)
	if err != nil {
		return &RenderError{Format: "docx", Path: path, Message: "failed to create file", Cause: err}
	}
	defer func() { _ = file.Close() }()

	if err := writeDOCX(file, data); err != nil {
		return &RenderError{Format: "docx", Path: path, Message: "failed to write document", Cause: err}
	}
	return nil
}

// ProbeDOCX verifies at startup that DOCX serialization works, producing the
// capability flag the export layer consults. A probe failure disables the
// DOCX export option; it never aborts the run.
func ProbeDOCX() bool {
	return writeDOCX(io.Discard, Data{}.withDefaults()) == nil
}

// writeDOCX serializes the resume document to w
func writeDOCX(w io.Writer, data Data) error {
	style := DescriptorFor(data.Style)
	doc := godocx.New().WithDefaultTheme()

	// go-docx sizes are half-points
	halfPoints := func(pt float64) string {
		return strconv.Itoa(int(pt * 2))
	}

	namePara := doc.AddParagraph().Justification("center")
	namePara.AddText(data.Name).Size(halfPoints(style.NameSize)).Bold()

	contactPara := doc.AddParagraph().Justification("center")
	contactPara.AddText(data.Email).Size(halfPoints(style.ContactSize))
	doc.AddParagraph()

	addHeading := func(text string) {
		p := doc.AddParagraph()
		p.AddText(style.heading(text)).Size(halfPoints(style.HeadingSize)).Bold()
	}
	addBody := func(text string) {
		for _, line := range strings.Split(text, "\n") {
			p := doc.AddParagraph()
			p.AddText(line).Size(halfPoints(style.BodySize))
		}
	}

	addHeading("Professional Summary")
	addBody(data.Summary)

	if len(data.Bullets) > 0 {
		addHeading("Key Achievements")
		addBody(strings.Join(data.Bullets, "\n"))
	}

	addHeading("Experience & Skills")
	addBody(data.ResumeText)

	_, err := doc.WriteTo(w)
	return err
}
