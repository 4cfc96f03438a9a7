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
	"time"

	"github.com/talentsift/assessrec/core"
	"github.com/talentsift/assessrec/intent"
	"github.com/talentsift/assessrec/retrieval"
)

const (
	// defaultRetrieveTopN is the retrieval pool size feeding the pipeline.
	defaultRetrieveTopN = 200

	// rerankDepth bounds how far down the ranking the reranker may look.
	rerankDepth = 60
)

// Recommendation is one entry of the final result. It carries catalog
// attributes only; internal scores never leave the pipeline.
type Recommendation struct {
	URL             string   `json:"url"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Duration        int      `json:"duration"`
	TestTypes       []string `json:"test_type"`
	RemoteSupport   string   `json:"remote_support"`
	AdaptiveSupport string   `json:"adaptive_support"`
}

// Pipeline runs the full ranking flow for one query: intent resolution,
// hybrid retrieval, constraint filtering, optional boosts and reranking,
// then balanced selection.
type Pipeline struct {
	items    []core.CatalogItem
	scorer   retrieval.Scorer
	resolver *intent.Resolver
	reranker *Reranker
	boosts   BoostConfig
	monitor  Monitor
	topN     int
	logger   *slog.Logger
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithReranker enables LLM reranking.
func WithReranker(r *Reranker) PipelineOption {
	return func(p *Pipeline) {
		p.reranker = r
	}
}

// WithBoosts enables the given score boosts.
func WithBoosts(cfg BoostConfig) PipelineOption {
	return func(p *Pipeline) {
		p.boosts = cfg
	}
}

// WithMonitor attaches a stage monitor.
func WithMonitor(m Monitor) PipelineOption {
	return func(p *Pipeline) {
		if m != nil {
			p.monitor = m
		}
	}
}

// WithRetrieveTopN overrides the retrieval pool size.
func WithRetrieveTopN(n int) PipelineOption {
	return func(p *Pipeline) {
		if n > 0 {
			p.topN = n
		}
	}
}

// NewPipeline creates a ranking pipeline over the given catalog. The item
// slice must be ordered by ordinal, matching the corpus the scorer was
// built from.
func NewPipeline(items []core.CatalogItem, scorer retrieval.Scorer, resolver *intent.Resolver, opts ...PipelineOption) (*Pipeline, error) {
	if scorer == nil {
		return nil, ErrScorerRequired
	}
	if resolver == nil {
		return nil, ErrResolverRequired
	}

	p := &Pipeline{
		items:    items,
		scorer:   scorer,
		resolver: resolver,
		monitor:  NoopMonitor{},
		topN:     defaultRetrieveTopN,
		logger:   slog.Default().With("component", "rank_pipeline"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Recommend returns up to k recommendations for a query. k is clamped to
// [5,10]; callers asking for fewer still get a usable shortlist.
func (p *Pipeline) Recommend(ctx context.Context, query string, k int) ([]Recommendation, error) {
	if len(p.items) == 0 {
		// Nothing indexed yet is not an error, the result is just empty.
		return []Recommendation{}, nil
	}
	if k < 5 {
		k = 5
	}
	if k > MaxSelect {
		k = MaxSelect
	}

	start := time.Now()

	it, err := p.resolver.Resolve(ctx, query)
	if err != nil {
		return nil, err
	}
	p.monitor.IntentResolved(query, it)

	docs, err := p.scorer.Score(ctx, query, p.topN)
	if err != nil {
		return nil, err
	}
	p.monitor.Retrieved(len(docs))

	candidates := make([]core.Candidate, 0, len(docs))
	for _, doc := range docs {
		if doc.Ordinal < 0 || doc.Ordinal >= len(p.items) {
			continue
		}
		candidates = append(candidates, core.Candidate{
			Item:  p.items[doc.Ordinal],
			Score: doc.Score,
		})
	}

	before := len(candidates)
	candidates = FilterConstraints(candidates, it)
	p.monitor.Filtered(before, len(candidates))

	candidates = ApplyBoosts(candidates, it, p.boosts)

	if p.reranker != nil && len(candidates) > 0 {
		depth := len(candidates)
		if depth > rerankDepth {
			depth = rerankDepth
		}
		// The selector only ever sees the reranked window.
		candidates = p.reranker.Rerank(ctx, query, candidates[:depth])
		p.monitor.Reranked(depth)
	}

	selected := SelectBalanced(candidates, it.DomainMix, k)
	p.monitor.Selected(len(selected))

	p.logger.Debug("recommendation complete",
		"candidates", before,
		"selected", len(selected),
		"elapsed", time.Since(start))

	return toRecommendations(selected), nil
}

// toRecommendations converts candidates to the outward-facing shape,
// defaulting blank catalog attributes.
func toRecommendations(candidates []core.Candidate) []Recommendation {
	out := make([]Recommendation, len(candidates))
	for i := range candidates {
		item := &candidates[i].Item
		rec := Recommendation{
			URL:             core.CanonicalURL(item.URL),
			Name:            item.Name,
			Description:     item.Description,
			Duration:        item.Duration,
			TestTypes:       item.TestTypes,
			RemoteSupport:   item.RemoteSupport,
			AdaptiveSupport: item.AdaptiveSupport,
		}
		if rec.TestTypes == nil {
			rec.TestTypes = []string{}
		}
		if rec.RemoteSupport == "" {
			rec.RemoteSupport = "Yes"
		}
		if rec.AdaptiveSupport == "" {
			rec.AdaptiveSupport = "No"
		}
		out[i] = rec
	}
	return out
}
