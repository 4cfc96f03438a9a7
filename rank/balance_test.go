// Copyright 2026 TalentSift
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rank

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentsift/assessrec/core"
)

func tagged(i int, tags ...string) core.Candidate {
	return core.Candidate{
		Item: core.CatalogItem{
			Name:      fmt.Sprintf("Assessment %d", i),
			URL:       fmt.Sprintf("https://www.shl.com/products/product-catalog/view/assessment-%d/", i),
			TestTypes: tags,
			Ordinal:   i,
		},
		Score: 1.0 - float64(i)*0.01,
	}
}

func countTagged(candidates []core.Candidate, knowledge bool) int {
	n := 0
	for i := range candidates {
		if knowledge && candidates[i].Item.HasKnowledgeTag() {
			n++
		}
		if !knowledge && candidates[i].Item.HasPersonalityTag() {
			n++
		}
	}
	return n
}

func TestSelectBalanced(t *testing.T) {
	t.Run("honors knowledge-heavy mix", func(t *testing.T) {
		var pool []core.Candidate
		for i := 0; i < 10; i++ {
			pool = append(pool, tagged(i, core.TestTypeKnowledge))
		}
		for i := 10; i < 20; i++ {
			pool = append(pool, tagged(i, core.TestTypePersonality))
		}

		out := SelectBalanced(pool, core.DomainMix{K: 0.8, P: 0.2}, 10)
		require.Len(t, out, 10)
		assert.Equal(t, 8, countTagged(out, true))
		assert.Equal(t, 2, countTagged(out, false))
	})

	t.Run("neutral items cover missing groups", func(t *testing.T) {
		var pool []core.Candidate
		for i := 0; i < 3; i++ {
			pool = append(pool, tagged(i, core.TestTypePersonality))
		}
		for i := 3; i < 15; i++ {
			pool = append(pool, tagged(i, "Simulations"))
		}

		out := SelectBalanced(pool, core.DomainMix{K: 0.8, P: 0.2}, 10)
		// No knowledge items exist; the quota falls to neutral items and the
		// result still reaches k.
		assert.Len(t, out, 10)
	})

	t.Run("result preserves input order", func(t *testing.T) {
		var pool []core.Candidate
		for i := 0; i < 12; i++ {
			pool = append(pool, tagged(i, core.TestTypeKnowledge))
		}
		out := SelectBalanced(pool, core.DefaultDomainMix(), 5)
		require.Len(t, out, 5)
		for i := 1; i < len(out); i++ {
			assert.Greater(t, out[i-1].Score, out[i].Score)
		}
	})

	t.Run("duplicate URLs collapse", func(t *testing.T) {
		a := tagged(0, core.TestTypeKnowledge)
		b := tagged(1, core.TestTypeKnowledge)
		b.Item.URL = "https://www.shl.com/solutions/" + a.Item.URL[len("https://www.shl.com/"):]

		out := SelectBalanced([]core.Candidate{a, b}, core.DefaultDomainMix(), 10)
		assert.Len(t, out, 1)
	})

	t.Run("k clamped to bounds", func(t *testing.T) {
		var pool []core.Candidate
		for i := 0; i < 20; i++ {
			pool = append(pool, tagged(i, core.TestTypeKnowledge))
		}
		assert.Len(t, SelectBalanced(pool, core.DefaultDomainMix(), 0), MinSelect)
		assert.Len(t, SelectBalanced(pool, core.DefaultDomainMix(), 50), MaxSelect)
	})

	t.Run("small pool returned whole", func(t *testing.T) {
		pool := []core.Candidate{tagged(0, core.TestTypeKnowledge), tagged(1, core.TestTypePersonality)}
		out := SelectBalanced(pool, core.DefaultDomainMix(), 10)
		assert.Len(t, out, 2)
	})

	t.Run("dual-tagged items count as neutral", func(t *testing.T) {
		var pool []core.Candidate
		for i := 0; i < 6; i++ {
			pool = append(pool, tagged(i, core.TestTypeKnowledge, core.TestTypePersonality))
		}
		for i := 6; i < 12; i++ {
			pool = append(pool, tagged(i, core.TestTypeKnowledge))
		}
		out := SelectBalanced(pool, core.DomainMix{K: 1, P: 0}, 6)
		require.Len(t, out, 6)
		// Knowledge-only items fill the whole quota before neutrals.
		for i := range out {
			assert.False(t, out[i].Item.HasPersonalityTag())
		}
	})
}

func TestDedupeByURL(t *testing.T) {
	a := tagged(0, core.TestTypeKnowledge)
	b := tagged(0, core.TestTypeKnowledge)
	c := tagged(2, core.TestTypeKnowledge)
	out := dedupeByURL([]core.Candidate{a, b, c})
	assert.Len(t, out, 2)
}
