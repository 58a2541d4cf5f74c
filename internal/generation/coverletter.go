package generation

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// GenerateCoverLetter fills the fixed multi-paragraph cover letter template
// with the candidate name and top keywords. Without a job description the
// letter uses generic "the position" language and a shorter template.
func GenerateCoverLetter(name string, atsKeywords types.KeywordSet, jobDescription string) string {
	if name == "" {
		name = "Your Name"
	}

	if jobDescription == "" {
		background := "relevant field"
		if terms := atsKeywords.TopTerms(3); len(terms) > 0 {
			background = strings.Join(terms, ", ")
		}
		return "Dear Hiring Manager,\n\n" +
			"I am writing to express my interest in the position. " +
			"With my background in " + background + ", " +
			"I am confident I would be a valuable addition to your team.\n\n" +
			"Sincerely,\n" + name
	}

	skillsMentioned := "relevant skills"
	if terms := atsKeywords.TopTerms(5); len(terms) > 0 {
		skillsMentioned = strings.Join(terms, ", ")
	}

	return "Dear Hiring Manager,\n\n" +
		"I am writing to express my strong interest in the position. With my background in " +
		skillsMentioned + ",\n" +
		"I am excited about the opportunity to contribute to your team.\n\n" +
		"My experience aligns well with the requirements you've outlined. I have a proven track record of\n" +
		"delivering results and working collaboratively in dynamic environments.\n\n" +
		"I am eager to discuss how my skills and experience can benefit your organization. Thank you for\n" +
		"considering my application.\n\n" +
		"Sincerely,\n" + name
}
