package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// maxBodyChars truncates the rendered resume body
const maxBodyChars = 5000

// StyleDescriptor holds the fixed layout parameters of one resume template.
// Templates differ in fonts and heading conventions only; content is
// identical across them.
type StyleDescriptor struct {
	NameFont          string
	BodyFont          string
	NameSize          float64
	ContactSize       float64
	HeadingSize       float64
	BodySize          float64
	UppercaseHeadings bool
}

// styleDescriptors maps each template style to its layout
var styleDescriptors = map[types.TemplateStyle]StyleDescriptor{
	types.TemplateModern: {
		NameFont:    "Helvetica",
		BodyFont:    "Helvetica",
		NameSize:    18,
		ContactSize: 11,
		HeadingSize: 14,
		BodySize:    11,
	},
	types.TemplateClassic: {
		NameFont:          "Times",
		BodyFont:          "Times",
		NameSize:          16,
		ContactSize:       11,
		HeadingSize:       12,
		BodySize:          10,
		UppercaseHeadings: true,
	},
	types.TemplateProfessional: {
		NameFont:    "Times",
		BodyFont:    "Helvetica",
		NameSize:    17,
		ContactSize: 11,
		HeadingSize: 13,
		BodySize:    10,
	},
}

// DescriptorFor returns the layout for a template style, defaulting to Modern
// for unknown styles.
func DescriptorFor(style types.TemplateStyle) StyleDescriptor {
	if d, ok := styleDescriptors[style]; ok {
		return d
	}
	return styleDescriptors[types.TemplateModern]
}

// heading applies the template's heading case convention
func (d StyleDescriptor) heading(text string) string {
	if d.UppercaseHeadings {
		return strings.ToUpper(text)
	}
	return text
}
