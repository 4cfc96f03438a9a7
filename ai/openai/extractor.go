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

package openai

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/talentsift/assessrec/ai"
	"github.com/talentsift/assessrec/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// IntentExtractor implements ai.IntentExtractor using OpenAI-compatible chat APIs.
type IntentExtractor struct {
	client llms.Model
	logger *slog.Logger
}

// newIntentExtractor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newIntentExtractor(config *ai.Config) (*IntentExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.ChatHost),
		openai.WithToken(config.Token),
		openai.WithModel(config.ChatModel),
	)
	if err != nil {
		return nil, err
	}

	return &IntentExtractor{
		client: client,
		logger: slog.Default().With("component", "openai-intent-extractor"),
	}, nil
}

// NewIntentExtractor creates a new intent extractor using the provided configuration.
//
// Returns ai.IntentExtractor interface to enforce abstraction.
func NewIntentExtractor(config *ai.Config) (ai.IntentExtractor, error) {
	return newIntentExtractor(config)
}

// ExtractIntent analyzes a hiring query using an LLM and returns a structured Intent.
// The model response must contain a domain_mix object; anything else is treated
// as a malformed response and returned as an error so the caller can fall back.
func (e *IntentExtractor) ExtractIntent(ctx context.Context, query string) (*core.Intent, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(intentSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(query),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var obj map[string]any
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			e.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			e.logger.Warn("no choices returned from model")
			lastErr = ErrMalformedResponse
			continue
		}

		responseText := stripCodeFences(response.Choices[0].Content)
		responseText = repairJSON(responseText)
		responseText = firstJSONObject(responseText)

		if err := json.Unmarshal([]byte(responseText), &obj); err != nil {
			lastErr = err
			e.logger.Warn("error parsing intent response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		lastErr = nil
		break
	}

	if lastErr != nil {
		e.logger.Error("failed to parse intent response after retries", "err", lastErr)
		return nil, lastErr
	}

	if _, ok := obj["domain_mix"].(map[string]any); !ok {
		e.logger.Warn("intent response missing domain_mix object")
		return nil, ErrMalformedResponse
	}

	intent := intentFromObject(obj)
	e.logger.Debug("extracted intent",
		"seniority", intent.Seniority,
		"durationLimit", intent.DurationLimitMinutes,
		"mixK", intent.DomainMix.K)

	return intent, nil
}

// intentFromObject converts a decoded JSON object into a validated Intent.
// Field coercion is forgiving: models routinely return numbers as floats,
// omit optional fields, or emit values of the wrong type.
func intentFromObject(obj map[string]any) *core.Intent {
	mix := core.DefaultDomainMix()
	if dm, ok := obj["domain_mix"].(map[string]any); ok {
		mix = core.DomainMix{
			K: coerceFloat(dm["K"], 0.8),
			P: coerceFloat(dm["P"], 0.2),
		}.Normalized()
	}

	seniority := core.Seniority(coerceString(obj["seniority"], string(core.SeniorityUnknown)))
	if core.ValidateSeniority(seniority) != nil {
		seniority = core.SeniorityUnknown
	}

	return &core.Intent{
		HardSkills:           coerceStrings(obj["hard_skills"]),
		SoftSkills:           coerceStrings(obj["soft_skills"]),
		Roles:                coerceStrings(obj["roles"]),
		Seniority:            seniority,
		DurationLimitMinutes: coerceMinutes(obj["duration_limit_minutes"]),
		RemoteRequired:       coerceRemote(obj["remote_required"]),
		DomainMix:            mix,
	}
}

func coerceFloat(v any, def float64) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int:
		return float64(x)
	}
	return def
}

func coerceString(v any, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}

func coerceStrings(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// coerceMinutes converts a duration value to whole minutes, 0 when absent
// or unusable.
func coerceMinutes(v any) int {
	f, ok := v.(float64)
	if !ok || f < 0 {
		return 0
	}
	return int(f)
}

func coerceRemote(v any) core.RemoteRequirement {
	b, ok := v.(bool)
	if !ok {
		return core.RemoteUnknown
	}
	if b {
		return core.RemoteRequired
	}
	return core.RemoteNotRequired
}
