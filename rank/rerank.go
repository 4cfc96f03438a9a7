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
	"log/slog"
	"slices"
	"time"

	"github.com/talentsift/assessrec/ai"
	"github.com/talentsift/assessrec/core"
)

const (
	// rerankCandidateCap bounds how many candidates go to the judge in one
	// call. Prompt size grows linearly with candidates and judgment quality
	// degrades well before the context window fills.
	rerankCandidateCap = 20

	// neutralLLMScore is assumed for candidates the judge did not score.
	neutralLLMScore = 0.5

	// Blend weights between the retrieval score and the judge score.
	rerankOrigWeight = 0.5
	rerankLLMWeight  = 0.5

	defaultJudgeTimeout = 60 * time.Second
)

// Reranker re-orders the head of a candidate list using an LLM relevance
// judge. Any judge failure leaves the input order untouched; reranking is
// an enhancement, never a dependency.
type Reranker struct {
	judge   ai.RelevanceJudge
	timeout time.Duration
	logger  *slog.Logger
}

// RerankerOption configures a Reranker.
type RerankerOption func(*Reranker)

// WithJudgeTimeout bounds a single judge call.
func WithJudgeTimeout(d time.Duration) RerankerOption {
	return func(r *Reranker) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// NewReranker creates a Reranker around the given judge.
func NewReranker(judge ai.RelevanceJudge, opts ...RerankerOption) *Reranker {
	r := &Reranker{
		judge:   judge,
		timeout: defaultJudgeTimeout,
		logger:  slog.Default().With("component", "reranker"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rerank sends up to rerankCandidateCap head candidates to the judge, then
// blends a judge score into every candidate's retrieval score, assuming a
// neutral judgment where the judge said nothing. The whole list is re-sorted
// by blended score, so a judged item scored low can fall below unjudged ones.
// On judge failure the input is returned as-is.
func (r *Reranker) Rerank(ctx context.Context, query string, candidates []core.Candidate) []core.Candidate {
	if r.judge == nil || len(candidates) == 0 {
		return candidates
	}

	judged := len(candidates)
	if judged > rerankCandidateCap {
		judged = rerankCandidateCap
	}

	items := make([]core.CatalogItem, judged)
	for i := 0; i < judged; i++ {
		items[i] = candidates[i].Item
	}

	judgeCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	scores, err := r.judge.JudgeRelevance(judgeCtx, query, items)
	if err != nil {
		r.logger.Warn("relevance judgment failed, keeping retrieval order", "error", err)
		return candidates
	}

	out := make([]core.Candidate, len(candidates))
	copy(out, candidates)

	for i := range out {
		llm := neutralLLMScore
		if s, ok := scores[out[i].Item.Name]; ok {
			if s < 0 {
				s = 0
			}
			if s > 1 {
				s = 1
			}
			llm = s
		}
		out[i].LLMScore = llm
		out[i].Score = rerankOrigWeight*out[i].Score + rerankLLMWeight*llm
	}

	slices.SortFunc(out, func(a, b core.Candidate) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return a.Item.Ordinal - b.Item.Ordinal
	})

	return out
}
