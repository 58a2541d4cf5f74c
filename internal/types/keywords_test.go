package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordSet_AddDeduplicatesCaseInsensitive(t *testing.T) {
	ks := &KeywordSet{}
	ks.Add("Python", 1.0)
	ks.Add("python", 0.5)
	ks.Add("PYTHON", 2.0)

	assert.Equal(t, 1, ks.Len())
	assert.Equal(t, "Python", ks.Keywords[0].Term)
	assert.Equal(t, 1.0, ks.Keywords[0].Score)
}

func TestKeywordSet_AddClampsNegativeScores(t *testing.T) {
	ks := &KeywordSet{}
	ks.Add("docker", -0.3)

	assert.Equal(t, 0.0, ks.Keywords[0].Score)
}

func TestKeywordSet_AddIgnoresEmptyTerm(t *testing.T) {
	ks := &KeywordSet{}
	ks.Add("", 1.0)

	assert.Equal(t, 0, ks.Len())
}

func TestKeywordSet_TopTerms(t *testing.T) {
	ks := &KeywordSet{}
	ks.Add("go", 3.0)
	ks.Add("aws", 2.0)
	ks.Add("sql", 1.0)

	assert.Equal(t, []string{"go", "aws"}, ks.TopTerms(2))
	assert.Equal(t, []string{"go", "aws", "sql"}, ks.TopTerms(10))
}

func TestKeywordSet_Truncate(t *testing.T) {
	ks := &KeywordSet{}
	ks.Add("a", 3.0)
	ks.Add("b", 2.0)
	ks.Add("c", 1.0)

	ks.Truncate(2)
	assert.Equal(t, []string{"a", "b"}, ks.Terms())

	// Truncating beyond current size is a no-op
	ks.Truncate(5)
	assert.Equal(t, 2, ks.Len())
}

func TestKeywordSet_NilReceiverIsSafe(t *testing.T) {
	var ks *KeywordSet

	assert.Equal(t, 0, ks.Len())
	assert.Nil(t, ks.Terms())
	assert.False(t, ks.Contains("go"))
}
