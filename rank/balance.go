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
	"math"
	"slices"

	"github.com/talentsift/assessrec/core"
)

// Selection size bounds.
const (
	MinSelect = 1
	MaxSelect = 10
)

// SelectBalanced picks up to k candidates honoring the target domain mix
// between Knowledge & Skills and Personality & Behavior assessments.
//
// Candidates are partitioned into knowledge-only, personality-only and
// neutral groups. Quotas are filled per group by descending score; neutral
// items cover any group that runs short. Remaining slots are filled from
// the leftover pool in input order. Duplicate URLs are dropped, and the
// final list preserves the input ranking.
func SelectBalanced(candidates []core.Candidate, mix core.DomainMix, k int) []core.Candidate {
	if k < MinSelect {
		k = MinSelect
	}
	if k > MaxSelect {
		k = MaxSelect
	}

	pool := dedupeByURL(candidates)
	if len(pool) <= k {
		return pool
	}

	mix = mix.Normalized()
	quotaK := int(math.Round(float64(k) * mix.K))
	quotaP := k - quotaK

	var knowledge, personality, neutral []int
	for i := range pool {
		kTag := pool[i].Item.HasKnowledgeTag()
		pTag := pool[i].Item.HasPersonalityTag()
		switch {
		case kTag && !pTag:
			knowledge = append(knowledge, i)
		case pTag && !kTag:
			personality = append(personality, i)
		default:
			neutral = append(neutral, i)
		}
	}

	byScore := func(idxs []int) []int {
		sorted := slices.Clone(idxs)
		slices.SortFunc(sorted, func(a, b int) int {
			if pool[a].Score > pool[b].Score {
				return -1
			}
			if pool[a].Score < pool[b].Score {
				return 1
			}
			return pool[a].Item.Ordinal - pool[b].Item.Ordinal
		})
		return sorted
	}

	taken := make(map[int]bool, k)
	take := func(idxs []int, n int) int {
		count := 0
		for _, i := range idxs {
			if count >= n {
				break
			}
			if !taken[i] {
				taken[i] = true
				count++
			}
		}
		return count
	}

	tookK := take(byScore(knowledge), quotaK)
	tookP := take(byScore(personality), quotaP)

	// Neutral items cover whatever the tagged groups could not supply.
	shortfall := (quotaK - tookK) + (quotaP - tookP)
	if shortfall > 0 {
		take(byScore(neutral), shortfall)
	}

	// Top up from the whole pool in rank order until k slots are used.
	for i := range pool {
		if len(taken) >= k {
			break
		}
		if !taken[i] {
			taken[i] = true
		}
	}

	out := make([]core.Candidate, 0, k)
	for i := range pool {
		if taken[i] {
			out = append(out, pool[i])
		}
	}
	return out
}

// dedupeByURL keeps the first candidate for each canonical URL.
func dedupeByURL(candidates []core.Candidate) []core.Candidate {
	seen := make(map[string]bool, len(candidates))
	out := make([]core.Candidate, 0, len(candidates))
	for i := range candidates {
		url := core.CanonicalURL(candidates[i].Item.URL)
		if seen[url] {
			continue
		}
		seen[url] = true
		out = append(out, candidates[i])
	}
	return out
}
