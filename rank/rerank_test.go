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
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentsift/assessrec/ai/mock"
	"github.com/talentsift/assessrec/core"
)

func TestRerankerRerank(t *testing.T) {
	ctx := context.Background()

	t.Run("judge failure keeps input order", func(t *testing.T) {
		judge := mock.NewMockRelevanceJudge()
		judge.JudgeRelevanceFunc = func(ctx context.Context, query string, items []core.CatalogItem) (map[string]float64, error) {
			return nil, errors.New("judge unavailable")
		}
		reranker := NewReranker(judge)

		candidates := makeCandidates(5, nil)
		out := reranker.Rerank(ctx, "query", candidates)
		require.Len(t, out, 5)
		for i := range out {
			assert.Equal(t, candidates[i].Item.Name, out[i].Item.Name)
			assert.Equal(t, candidates[i].Score, out[i].Score)
		}
	})

	t.Run("judge scores reorder the head", func(t *testing.T) {
		judge := mock.NewMockRelevanceJudge()
		judge.JudgeRelevanceFunc = func(ctx context.Context, query string, items []core.CatalogItem) (map[string]float64, error) {
			scores := make(map[string]float64, len(items))
			for _, item := range items {
				scores[item.Name] = 0.1
			}
			scores["Item 3"] = 1.0
			return scores, nil
		}
		reranker := NewReranker(judge)

		out := reranker.Rerank(ctx, "query", makeCandidates(5, nil))
		require.Len(t, out, 5)
		assert.Equal(t, "Item 3", out[0].Item.Name)
		assert.InDelta(t, 1.0, out[0].LLMScore, 1e-9)
	})

	t.Run("unmatched items get neutral score", func(t *testing.T) {
		judge := mock.NewMockRelevanceJudge()
		judge.JudgeRelevanceFunc = func(ctx context.Context, query string, items []core.CatalogItem) (map[string]float64, error) {
			return map[string]float64{}, nil
		}
		reranker := NewReranker(judge)

		candidates := makeCandidates(3, nil)
		out := reranker.Rerank(ctx, "query", candidates)
		for i := range out {
			assert.InDelta(t, neutralLLMScore, out[i].LLMScore, 1e-9)
			expected := rerankOrigWeight*candidates[i].Score + rerankLLMWeight*neutralLLMScore
			assert.InDelta(t, expected, out[i].Score, 1e-9)
		}
	})

	t.Run("only the head is judged", func(t *testing.T) {
		var judgedCount int
		judge := mock.NewMockRelevanceJudge()
		judge.JudgeRelevanceFunc = func(ctx context.Context, query string, items []core.CatalogItem) (map[string]float64, error) {
			judgedCount = len(items)
			return map[string]float64{}, nil
		}
		reranker := NewReranker(judge)

		candidates := makeCandidates(50, nil)
		out := reranker.Rerank(ctx, "query", candidates)
		assert.Equal(t, rerankCandidateCap, judgedCount)
		require.Len(t, out, 50)
		// Everything blends the neutral score, so the order is preserved.
		for i := range out {
			assert.Equal(t, candidates[i].Item.Name, out[i].Item.Name)
			assert.InDelta(t, neutralLLMScore, out[i].LLMScore, 1e-9)
		}
	})

	t.Run("low judged scores fall below unjudged candidates", func(t *testing.T) {
		judge := mock.NewMockRelevanceJudge()
		judge.JudgeRelevanceFunc = func(ctx context.Context, query string, items []core.CatalogItem) (map[string]float64, error) {
			scores := make(map[string]float64, len(items))
			for _, item := range items {
				scores[item.Name] = 0.0
			}
			return scores, nil
		}
		reranker := NewReranker(judge)

		out := reranker.Rerank(ctx, "query", makeCandidates(25, nil))
		require.Len(t, out, 25)
		// The judged head blends to at most 0.5; "Item 20" blends its
		// retrieval score with the neutral judgment and takes the lead.
		assert.Equal(t, "Item 20", out[0].Item.Name)
		assert.Equal(t, "Item 0", out[5].Item.Name)
	})

	t.Run("out of range judge scores are clamped", func(t *testing.T) {
		judge := mock.NewMockRelevanceJudge()
		judge.JudgeRelevanceFunc = func(ctx context.Context, query string, items []core.CatalogItem) (map[string]float64, error) {
			return map[string]float64{
				"Item 0": 4.2,
				"Item 1": -1.0,
			}, nil
		}
		reranker := NewReranker(judge)

		out := reranker.Rerank(ctx, "query", makeCandidates(2, nil))
		assert.InDelta(t, 1.0, out[0].LLMScore, 1e-9)
		// Item 1 sorted below item 0; find it by name.
		for _, c := range out {
			if c.Item.Name == "Item 1" {
				assert.Zero(t, c.LLMScore)
			}
		}
	})

	t.Run("empty input", func(t *testing.T) {
		reranker := NewReranker(mock.NewMockRelevanceJudge())
		assert.Empty(t, reranker.Rerank(ctx, "query", nil))
	})
}
