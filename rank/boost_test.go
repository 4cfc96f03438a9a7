package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/talentsift/assessrec/core"
)

func TestApplyBoosts(t *testing.T) {
	it := &core.Intent{
		DurationLimitMinutes: 60,
		DomainMix:            core.DomainMix{K: 0.8, P: 0.2},
	}

	t.Run("disabled boosts are a no-op", func(t *testing.T) {
		candidates := makeCandidates(3, nil)
		out := ApplyBoosts(candidates, it, BoostConfig{})
		for i := range out {
			assert.Equal(t, candidates[i].Score, out[i].Score)
			assert.Zero(t, out[i].Boost)
		}
	})

	t.Run("duration proximity favors near-limit items", func(t *testing.T) {
		candidates := makeCandidates(3, func(i int, item *core.CatalogItem) {
			item.Duration = []int{55, 10, 90}[i]
		})
		out := ApplyBoosts(candidates, it, BoostConfig{DurationProximity: true})
		assert.Greater(t, out[0].Boost, out[1].Boost) // closer to the limit
		assert.Zero(t, out[2].Boost)                  // over the limit
	})

	t.Run("unknown duration gets no proximity boost", func(t *testing.T) {
		candidates := makeCandidates(1, func(i int, item *core.CatalogItem) {
			item.Duration = 0
		})
		out := ApplyBoosts(candidates, it, BoostConfig{DurationProximity: true})
		assert.Zero(t, out[0].Boost)
	})

	t.Run("test type affinity follows the dominant mix", func(t *testing.T) {
		candidates := makeCandidates(2, func(i int, item *core.CatalogItem) {
			if i == 0 {
				item.TestTypes = []string{core.TestTypeKnowledge}
			} else {
				item.TestTypes = []string{core.TestTypePersonality}
			}
		})
		out := ApplyBoosts(candidates, it, BoostConfig{TestTypeAffinity: true})
		assert.InDelta(t, testTypeBoost, out[0].Boost, 1e-9)
		assert.Zero(t, out[1].Boost)

		pHeavy := &core.Intent{DomainMix: core.DomainMix{K: 0.2, P: 0.8}}
		out = ApplyBoosts(candidates, pHeavy, BoostConfig{TestTypeAffinity: true})
		assert.Zero(t, out[0].Boost)
		assert.InDelta(t, testTypeBoost, out[1].Boost, 1e-9)
	})

	t.Run("input slice not mutated", func(t *testing.T) {
		candidates := makeCandidates(1, func(i int, item *core.CatalogItem) {
			item.TestTypes = []string{core.TestTypeKnowledge}
		})
		before := candidates[0].Score
		ApplyBoosts(candidates, it, BoostConfig{TestTypeAffinity: true})
		assert.Equal(t, before, candidates[0].Score)
	})
}
