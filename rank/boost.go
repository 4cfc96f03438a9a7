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

import "github.com/talentsift/assessrec/core"

// Maximum boost magnitudes. Small relative to the [0,1] score range so a
// boost re-orders near-ties without overriding retrieval.
const (
	durationBoostMax = 0.10
	testTypeBoost    = 0.08
)

// BoostConfig toggles the optional scoring boosts. All boosts default to
// off; they did not improve benchmark accuracy enough to enable globally
// but remain available for tuning.
type BoostConfig struct {
	// DurationProximity rewards items whose duration sits close to the
	// extracted duration ceiling without exceeding it.
	DurationProximity bool

	// TestTypeAffinity rewards items tagged with the dominant side of the
	// target domain mix.
	TestTypeAffinity bool
}

// ApplyBoosts returns candidates with the enabled boosts added to their
// scores. The applied boost is recorded on each candidate.
func ApplyBoosts(candidates []core.Candidate, it *core.Intent, cfg BoostConfig) []core.Candidate {
	if !cfg.DurationProximity && !cfg.TestTypeAffinity {
		return candidates
	}

	out := make([]core.Candidate, len(candidates))
	copy(out, candidates)

	knowledgeHeavy := it.DomainMix.Normalized().K >= 0.5

	for i := range out {
		var boost float64

		if cfg.DurationProximity && it.DurationLimitMinutes > 0 {
			dur := out[i].Item.Duration
			if dur > 0 && dur <= it.DurationLimitMinutes {
				closeness := float64(dur) / float64(it.DurationLimitMinutes)
				boost += durationBoostMax * closeness
			}
		}

		if cfg.TestTypeAffinity {
			if knowledgeHeavy && out[i].Item.HasKnowledgeTag() {
				boost += testTypeBoost
			}
			if !knowledgeHeavy && out[i].Item.HasPersonalityTag() {
				boost += testTypeBoost
			}
		}

		out[i].Boost = boost
		out[i].Score += boost
	}
	return out
}
