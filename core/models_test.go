package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := IDFromContent("java-programming-test")
		b := IDFromContent("java-programming-test")
		assert.Equal(t, a, b)
	})

	t.Run("different content different id", func(t *testing.T) {
		a := IDFromContent("java-programming-test")
		b := IDFromContent("python-programming-test")
		assert.NotEqual(t, a, b)
	})

	t.Run("empty content produces id", func(t *testing.T) {
		assert.NotPanics(t, func() {
			IDFromContent("")
		})
	})
}

func TestCatalogItemTags(t *testing.T) {
	t.Run("knowledge tag", func(t *testing.T) {
		item := &CatalogItem{TestTypes: []string{"Knowledge & Skills"}}
		assert.True(t, item.HasKnowledgeTag())
		assert.False(t, item.HasPersonalityTag())
	})

	t.Run("personality tag", func(t *testing.T) {
		item := &CatalogItem{TestTypes: []string{"Personality & Behavior"}}
		assert.False(t, item.HasKnowledgeTag())
		assert.True(t, item.HasPersonalityTag())
	})

	t.Run("behavior counts as personality", func(t *testing.T) {
		item := &CatalogItem{TestTypes: []string{"Behavioral Styles"}}
		assert.True(t, item.HasPersonalityTag())
	})

	t.Run("case insensitive", func(t *testing.T) {
		item := &CatalogItem{TestTypes: []string{"KNOWLEDGE & SKILLS"}}
		assert.True(t, item.HasKnowledgeTag())
	})

	t.Run("neutral tags", func(t *testing.T) {
		item := &CatalogItem{TestTypes: []string{"Ability & Aptitude", "Simulations"}}
		assert.False(t, item.HasKnowledgeTag())
		assert.False(t, item.HasPersonalityTag())
	})

	t.Run("no tags", func(t *testing.T) {
		item := &CatalogItem{}
		assert.False(t, item.HasKnowledgeTag())
		assert.False(t, item.HasPersonalityTag())
	})
}

func TestDomainMixNormalized(t *testing.T) {
	t.Run("already normalized", func(t *testing.T) {
		mix := DomainMix{K: 0.6, P: 0.4}.Normalized()
		assert.InDelta(t, 0.6, mix.K, 1e-9)
		assert.InDelta(t, 0.4, mix.P, 1e-9)
	})

	t.Run("scales to sum one", func(t *testing.T) {
		mix := DomainMix{K: 3, P: 1}.Normalized()
		assert.InDelta(t, 0.75, mix.K, 1e-9)
		assert.InDelta(t, 0.25, mix.P, 1e-9)
	})

	t.Run("zero mix falls back to default", func(t *testing.T) {
		mix := DomainMix{}.Normalized()
		assert.Equal(t, DefaultDomainMix(), mix)
	})

	t.Run("negative weights clamped", func(t *testing.T) {
		mix := DomainMix{K: -1, P: 0.5}.Normalized()
		assert.InDelta(t, 0.0, mix.K, 1e-9)
		assert.InDelta(t, 1.0, mix.P, 1e-9)
	})
}
