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

// Package heuristic provides a deterministic ai.IntentExtractor used when the
// LLM-backed extractor is unavailable or returns malformed output. It never
// returns an error, so it can terminate a fallback chain.
package heuristic

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/talentsift/assessrec/ai"
	"github.com/talentsift/assessrec/core"
)

// Soft-skill markers. Stems rather than full words so "collaborative" and
// "collaboration" both match.
var softSkillHints = []string{
	"collabor", "stakeholder", "communication", "team",
	"leadership", "behavior", "personality",
}

var (
	durationRangePattern   = regexp.MustCompile(`(\d+)\s*[-–]\s*(\d+)\s*(?:min|minute)`)
	durationHoursPattern   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:-?\s*hour|hr|hrs)`)
	durationMinutesPattern = regexp.MustCompile(`(\d+)\s*(?:min|minute)`)
)

// Extractor implements ai.IntentExtractor with rule-based extraction.
type Extractor struct{}

var _ ai.IntentExtractor = (*Extractor)(nil)

// NewExtractor creates a heuristic intent extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractIntent derives a low-confidence Intent from the query text alone.
// Duration comes from "<N> minutes"/"<N> hours"/"<A>-<B> min" patterns; the
// category mix leans towards Personality & Behavior when soft-skill markers
// appear. Seniority and the remote requirement stay unknown.
func (e *Extractor) ExtractIntent(_ context.Context, query string) (*core.Intent, error) {
	q := strings.ToLower(query)

	mix := core.DomainMix{K: 0.9, P: 0.1}
	if containsSoftSkillHint(q) {
		mix = core.DomainMix{K: 0.6, P: 0.4}
	}

	return &core.Intent{
		Seniority:            core.SeniorityUnknown,
		DurationLimitMinutes: ParseDurationMinutes(q),
		RemoteRequired:       core.RemoteUnknown,
		DomainMix:            mix,
	}, nil
}

func containsSoftSkillHint(q string) bool {
	for _, hint := range softSkillHints {
		if strings.Contains(q, hint) {
			return true
		}
	}
	return false
}

// ParseDurationMinutes extracts a duration target in minutes from query text.
// Ranges like "30-40 min" resolve to their midpoint; "1.5 hours" resolves to
// 90. Returns 0 when no duration is mentioned.
func ParseDurationMinutes(query string) int {
	q := strings.ToLower(query)

	if m := durationRangePattern.FindStringSubmatch(q); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		return (lo + hi) / 2
	}

	if m := durationHoursPattern.FindStringSubmatch(q); m != nil {
		hours, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return int(hours * 60)
		}
	}

	if m := durationMinutesPattern.FindStringSubmatch(q); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		return minutes
	}

	return 0
}
