package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeForPDF_Empty(t *testing.T) {
	assert.Equal(t, "", SanitizeForPDF(""))
}

func TestSanitizeForPDF_TypographicPunctuation(t *testing.T) {
	input := "2019–2023 — “shipped” the team’s v2…"
	assert.Equal(t, `2019-2023 -- "shipped" the team's v2...`, SanitizeForPDF(input))
}

func TestSanitizeForPDF_BulletMarker(t *testing.T) {
	assert.Equal(t, "- Led the migration.", SanitizeForPDF("• Led the migration."))
}

func TestSanitizeForPDF_StripsAccentsToBaseLetters(t *testing.T) {
	assert.Equal(t, "resume for Jose", SanitizeForPDF("résumé for José"))
}

func TestSanitizeForPDF_DropsUnrepresentableRunes(t *testing.T) {
	assert.Equal(t, "skills:  and Go", SanitizeForPDF("skills: 中文 and Go"))
}

func TestSanitizeForPDF_KeepsNewlinesAndTabs(t *testing.T) {
	assert.Equal(t, "a\nb\tc", SanitizeForPDF("a\nb\tc"))
}
