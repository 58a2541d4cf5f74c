package generation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBullets_ScenarioBuiltSentence(t *testing.T) {
	bullets := GenerateBullets("Built REST API using Python and AWS Lambda for 3 years", DefaultActionVerbs())

	require.Len(t, bullets, 1)
	assert.True(t, strings.HasPrefix(bullets[0], "• Built"), "got: %s", bullets[0])
	assert.True(t, strings.HasSuffix(bullets[0], "."))
}

func TestGenerateBullets_ActionVerbSentencesRankFirst(t *testing.T) {
	text := "The team was large and distributed across offices. " +
		"Developed a billing service that cut costs by 30%. " +
		"Managed a rollout across four regions without downtime."

	bullets := GenerateBullets(text, DefaultActionVerbs())

	require.Len(t, bullets, 3)
	assert.Contains(t, bullets[0], "Developed a billing service")
	assert.Contains(t, bullets[1], "Managed a rollout")
	// The verbless sentence is deprioritized, not discarded
	assert.Contains(t, bullets[2], "The team was large")
}

func TestGenerateBullets_CapAtFive(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		sb.WriteString("Delivered a meaningful project improvement this quarter. ")
	}

	bullets := GenerateBullets(sb.String(), DefaultActionVerbs())

	assert.Len(t, bullets, MaxBullets)
}

func TestGenerateBullets_EmptyInputYieldsGenericBullets(t *testing.T) {
	bullets := GenerateBullets("", DefaultActionVerbs())

	require.NotEmpty(t, bullets)
	assert.LessOrEqual(t, len(bullets), MaxBullets)
	assert.Contains(t, bullets[0], "Applied technical skills")
}

func TestGenerateBullets_ShortFragmentsYieldGenericBullets(t *testing.T) {
	bullets := GenerateBullets("Go. SQL. Git.", DefaultActionVerbs())

	require.NotEmpty(t, bullets)
	assert.GreaterOrEqual(t, len(bullets), 1)
	assert.LessOrEqual(t, len(bullets), MaxBullets)
}

func TestGenerateBullets_AlwaysBetweenOneAndFive(t *testing.T) {
	inputs := []string{
		"",
		"short",
		"Implemented X and improved Y in a long enough sentence.",
		strings.Repeat("Optimized the data pipeline for faster processing. ", 10),
	}
	for _, input := range inputs {
		bullets := GenerateBullets(input, DefaultActionVerbs())
		assert.GreaterOrEqual(t, len(bullets), 1, "input: %q", input)
		assert.LessOrEqual(t, len(bullets), MaxBullets, "input: %q", input)
	}
}
