package rendering

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// punctReplacer maps common typographic characters to ASCII-safe equivalents
// before the latin-1 pass.
var punctReplacer = strings.NewReplacer(
	"–", "-", // en dash
	"—", "--", // em dash
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"…", "...",
	"•", "-", // bullet marker
	"", "",
	" ", " ",
)

// stripMarks decomposes text and removes combining marks, so accented
// letters degrade to their base letter instead of being dropped.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// SanitizeForPDF replaces or removes characters the core PDF fonts cannot
// encode. Typographic punctuation gets ASCII equivalents, accented letters
// lose their marks, and anything still outside latin-1 is dropped. This is
// the local recovery path for encoding problems: rendering proceeds with the
// substituted text rather than failing.
func SanitizeForPDF(text string) string {
	if text == "" {
		return ""
	}

	text = punctReplacer.Replace(text)

	if converted, _, err := transform.String(stripMarks, text); err == nil {
		text = converted
	}

	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\t' || (r >= 0x20 && r <= 0xFF) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
