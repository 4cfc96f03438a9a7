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
	"fmt"
	"log/slog"

	"github.com/talentsift/assessrec/ai"
	"github.com/talentsift/assessrec/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Truncation limits for the judge prompt. Full descriptions add cost
// without improving judgments.
const (
	judgeMaxDescriptionLen = 200
	judgeMaxQueryLen       = 500
)

// RelevanceJudge implements ai.RelevanceJudge using OpenAI-compatible chat APIs.
type RelevanceJudge struct {
	client llms.Model
	logger *slog.Logger
}

// judgeItem is the candidate shape sent to the model.
type judgeItem struct {
	Idx         int      `json:"idx"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TestTypes   []string `json:"test_type"`
	Duration    int      `json:"duration"`
}

// judgeScore is one scored entry in the model's response.
type judgeScore struct {
	Name           string  `json:"name"`
	RelevanceScore float64 `json:"relevance_score"`
}

// judgeResponse wraps the score list so the response stays a JSON object,
// which JSON mode requires.
type judgeResponse struct {
	Scores []judgeScore `json:"scores"`
}

// newRelevanceJudge is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newRelevanceJudge(config *ai.Config) (*RelevanceJudge, error) {
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

	return &RelevanceJudge{
		client: client,
		logger: slog.Default().With("component", "openai-relevance-judge"),
	}, nil
}

// NewRelevanceJudge creates a new relevance judge using the provided configuration.
//
// Returns ai.RelevanceJudge interface to enforce abstraction.
func NewRelevanceJudge(config *ai.Config) (ai.RelevanceJudge, error) {
	return newRelevanceJudge(config)
}

// JudgeRelevance scores candidate assessments against the query.
// Returns a map from assessment name to a score in [0,1]. Items the model
// did not score are absent from the map.
func (j *RelevanceJudge) JudgeRelevance(ctx context.Context, query string, items []core.CatalogItem) (map[string]float64, error) {
	if len(items) == 0 {
		return map[string]float64{}, nil
	}

	payload := make([]judgeItem, 0, len(items))
	for i, item := range items {
		payload = append(payload, judgeItem{
			Idx:         i,
			Name:        item.Name,
			Description: truncate(item.Description, judgeMaxDescriptionLen),
			TestTypes:   item.TestTypes,
			Duration:    item.Duration,
		})
	}

	candidatesJSON, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(judgePromptTemplate, truncate(query, judgeMaxQueryLen), candidatesJSON)
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	response, err := j.client.GenerateContent(ctx, content, llms.WithTemperature(0.1), llms.WithJSONMode())
	if err != nil {
		j.logger.Error("failed to generate relevance judgments", "err", err)
		return nil, err
	}

	if len(response.Choices) < 1 {
		return nil, ErrMalformedResponse
	}

	responseText := stripCodeFences(response.Choices[0].Content)
	responseText = repairJSON(responseText)
	responseText = firstJSONObject(responseText)

	var decoded judgeResponse
	if err := json.Unmarshal([]byte(responseText), &decoded); err != nil {
		j.logger.Warn("error parsing judge response", "response", responseText, "err", err)
		return nil, err
	}

	scores := make(map[string]float64, len(decoded.Scores))
	for _, s := range decoded.Scores {
		if s.Name == "" {
			continue
		}
		score := s.RelevanceScore
		if score < 0 {
			score = 0
		}
		if score > 1 {
			score = 1
		}
		scores[s.Name] = score
	}

	j.logger.Debug("judged relevance", "candidates", len(items), "scored", len(scores))
	return scores, nil
}
