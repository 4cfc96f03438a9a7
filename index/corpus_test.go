package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/talentsift/assessrec/core"
)

func TestTokenize(t *testing.T) {
	t.Run("lowercases and splits", func(t *testing.T) {
		assert.Equal(t, []string{"java", "developer"}, Tokenize("Java Developer"))
	})

	t.Run("collapses whitespace", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c"}, Tokenize("  a\t b \n c "))
	})

	t.Run("empty string", func(t *testing.T) {
		assert.Empty(t, Tokenize(""))
		assert.Empty(t, Tokenize("   "))
	})
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", NormalizeWhitespace(" a  b\nc "))
	assert.Equal(t, "", NormalizeWhitespace("\t\n "))
}

func TestCorpusText(t *testing.T) {
	item := &core.CatalogItem{
		Name:            "Java 8 (New)",
		Description:     "Knowledge of Java 8 programming",
		Duration:        35,
		TestTypes:       []string{core.TestTypeKnowledge},
		RemoteSupport:   "Yes",
		AdaptiveSupport: "No",
	}

	text := CorpusText(item)
	assert.Contains(t, text, "Java 8 (New)")
	assert.Contains(t, text, "Knowledge of Java 8 programming")
	assert.Contains(t, text, "Knowledge & Skills")
	assert.Contains(t, text, "Duration 35 minutes")
	assert.Contains(t, text, "Remote Yes")
	assert.Contains(t, text, "Adaptive No")
}

func TestBuildLexical(t *testing.T) {
	items := []core.CatalogItem{
		{Name: "Java Test", Description: "java programming"},
		{Name: "OPQ", Description: "personality questionnaire"},
	}
	lex := BuildLexical(items)
	scores := lex.Scores(Tokenize("java"))
	assert.Greater(t, scores[0], 0.0)
	assert.Zero(t, scores[1])
}
