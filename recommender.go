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

package assessrec

import (
	"context"
	"log/slog"

	"github.com/talentsift/assessrec/ai"
	"github.com/talentsift/assessrec/ai/heuristic"
	"github.com/talentsift/assessrec/ai/openai"
	"github.com/talentsift/assessrec/indexer"
	"github.com/talentsift/assessrec/intent"
	"github.com/talentsift/assessrec/jdtext"
	"github.com/talentsift/assessrec/rank"
	"github.com/talentsift/assessrec/retrieval"
	"github.com/talentsift/assessrec/storage"
	"github.com/talentsift/assessrec/storage/badger"
)

// Recommender is the top-level entry point. It owns the storage backend,
// the AI provider and the ranking pipeline built over the indexed catalog.
type Recommender struct {
	backend     *badger.Backend
	catalogRepo storage.CatalogRepository
	intentRepo  storage.IntentCacheRepository
	provider    ai.AIProvider
	pipeline    *rank.Pipeline
	jd          *jdtext.Extractor
	options     *recommenderOptions
	logger      *slog.Logger
}

// RecommenderOption configures a Recommender.
type RecommenderOption func(*recommenderOptions)

type recommenderOptions struct {
	aiConfig      *ai.Config
	provider      ai.AIProvider
	alpha         float64
	rerank        bool
	heuristicOnly bool
	boosts        rank.BoostConfig
	monitor       rank.Monitor
	inMemory      bool
}

// WithAIConfig sets the AI service configuration.
func WithAIConfig(cfg *ai.Config) RecommenderOption {
	return func(o *recommenderOptions) {
		if cfg != nil {
			o.aiConfig = cfg
		}
	}
}

// WithAIProvider injects a pre-built provider, bypassing WithAIConfig.
// Mainly for tests.
func WithAIProvider(provider ai.AIProvider) RecommenderOption {
	return func(o *recommenderOptions) {
		o.provider = provider
	}
}

// WithAlpha sets the lexical weight of the hybrid retrieval blend.
func WithAlpha(alpha float64) RecommenderOption {
	return func(o *recommenderOptions) {
		o.alpha = alpha
	}
}

// WithReranking toggles LLM reranking of retrieval results.
func WithReranking(enabled bool) RecommenderOption {
	return func(o *recommenderOptions) {
		o.rerank = enabled
	}
}

// WithHeuristicIntentOnly disables the LLM intent extractor entirely.
// Useful when no chat model is reachable.
func WithHeuristicIntentOnly() RecommenderOption {
	return func(o *recommenderOptions) {
		o.heuristicOnly = true
	}
}

// WithBoosts enables optional scoring boosts.
func WithBoosts(cfg rank.BoostConfig) RecommenderOption {
	return func(o *recommenderOptions) {
		o.boosts = cfg
	}
}

// WithMonitor attaches a pipeline stage monitor.
func WithMonitor(m rank.Monitor) RecommenderOption {
	return func(o *recommenderOptions) {
		o.monitor = m
	}
}

// WithInMemoryStorage uses an in-memory backend instead of a directory.
// Mainly for tests.
func WithInMemoryStorage() RecommenderOption {
	return func(o *recommenderOptions) {
		o.inMemory = true
	}
}

// NewRecommender opens the database at filePath and assembles the full
// serving stack. Call Reload after (re)indexing to pick up catalog changes.
func NewRecommender(filePath string, opts ...RecommenderOption) (*Recommender, error) {
	options := &recommenderOptions{
		aiConfig: ai.DefaultConfig(),
		alpha:    retrieval.DefaultAlpha,
		monitor:  rank.NoopMonitor{},
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	catalogRepo, err := badger.NewCatalogRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	intentRepo, err := badger.NewIntentCacheRepository(backend)
	if err != nil {
		catalogRepo.Close()
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			intentRepo.Close()
			catalogRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	r := &Recommender{
		backend:     backend,
		catalogRepo: catalogRepo,
		intentRepo:  intentRepo,
		provider:    provider,
		jd:          jdtext.NewExtractor(),
		options:     options,
		logger:      slog.Default().With("component", "recommender"),
	}

	if err := r.Reload(context.Background()); err != nil {
		r.Close()
		return nil, err
	}

	return r, nil
}

// Reload re-reads the catalog from storage and rebuilds the retrieval index
// and ranking pipeline. Must be called after indexing into the same database.
func (r *Recommender) Reload(ctx context.Context) error {
	items, err := r.catalogRepo.AllItems(ctx)
	if err != nil {
		return err
	}

	scorer := retrieval.NewHybridScorer(items, r.provider.Embedder(),
		retrieval.WithAlpha(r.options.alpha))

	var primary ai.IntentExtractor
	if !r.options.heuristicOnly {
		primary = r.provider.IntentExtractor()
	}
	resolver, err := intent.NewResolver(primary, heuristic.NewExtractor(),
		r.options.aiConfig.ChatModel, intent.WithCache(r.intentRepo))
	if err != nil {
		return err
	}

	pipelineOpts := []rank.PipelineOption{
		rank.WithBoosts(r.options.boosts),
		rank.WithMonitor(r.options.monitor),
	}
	if r.options.rerank {
		pipelineOpts = append(pipelineOpts, rank.WithReranker(rank.NewReranker(r.provider.RelevanceJudge())))
	}

	pipeline, err := rank.NewPipeline(items, scorer, resolver, pipelineOpts...)
	if err != nil {
		return err
	}

	r.pipeline = pipeline
	r.logger.Info("catalog loaded", "items", len(items))
	return nil
}

// Recommend returns up to k assessments for a hiring query. When the query
// is a URL, the posting is fetched and its text used as the query; if the
// fetch fails the URL string itself serves as query text.
func (r *Recommender) Recommend(ctx context.Context, queryOrURL string, k int) ([]rank.Recommendation, error) {
	query := queryOrURL
	if jdtext.LooksLikeURL(queryOrURL) {
		text, err := r.jd.ExtractText(ctx, queryOrURL)
		if err != nil {
			r.logger.Warn("job posting fetch failed, using the URL as query text",
				"url", queryOrURL, "error", err)
		} else {
			query = text
		}
	}
	return r.pipeline.Recommend(ctx, query, k)
}

// NewIndexingPipeline creates an indexer writing into this recommender's
// catalog repository.
func (r *Recommender) NewIndexingPipeline(opts ...indexer.Option) (*indexer.Pipeline, error) {
	return indexer.NewPipeline(r.catalogRepo, r.provider.Embedder(), opts...)
}

// CatalogRepository exposes the catalog store.
func (r *Recommender) CatalogRepository() storage.CatalogRepository {
	return r.catalogRepo
}

// IntentCacheRepository exposes the intent cache store.
func (r *Recommender) IntentCacheRepository() storage.IntentCacheRepository {
	return r.intentRepo
}

// Close releases the provider, repositories and storage backend.
func (r *Recommender) Close() error {
	if err := r.provider.Close(); err != nil {
		r.logger.Error("error closing AI provider", "err", err)
	}

	if err := r.intentRepo.Close(); err != nil {
		r.logger.Error("error closing intent cache repository", "err", err)
		return err
	}
	if err := r.catalogRepo.Close(); err != nil {
		r.logger.Error("error closing catalog repository", "err", err)
		return err
	}

	if err := r.backend.Close(); err != nil {
		r.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
