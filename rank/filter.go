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
	"strings"

	"github.com/talentsift/assessrec/core"
)

// FilterFloor is the minimum candidate count a constraint filter may leave.
// A filter that would drop the pool below the floor is reverted entirely;
// extracted constraints are hints, not guarantees.
const FilterFloor = 5

// FilterConstraints applies the intent's duration and remote constraints as
// soft filters, in that order. Each filter is applied independently and
// reverted if it leaves fewer than FilterFloor candidates.
func FilterConstraints(candidates []core.Candidate, it *core.Intent) []core.Candidate {
	out := candidates

	if it.DurationLimitMinutes > 0 {
		out = softApply(out, func(c *core.Candidate) bool {
			// An unknown duration cannot satisfy the ceiling.
			return c.Item.Duration > 0 && c.Item.Duration <= it.DurationLimitMinutes
		})
	}

	if it.RemoteRequired == core.RemoteRequired {
		out = softApply(out, func(c *core.Candidate) bool {
			return strings.HasPrefix(strings.ToLower(c.Item.RemoteSupport), "y")
		})
	}

	return out
}

// softApply keeps candidates matching pred, unless that would leave fewer
// than FilterFloor, in which case the input is returned unchanged.
func softApply(candidates []core.Candidate, pred func(*core.Candidate) bool) []core.Candidate {
	kept := make([]core.Candidate, 0, len(candidates))
	for i := range candidates {
		if pred(&candidates[i]) {
			kept = append(kept, candidates[i])
		}
	}
	if len(kept) < FilterFloor {
		return candidates
	}
	return kept
}
