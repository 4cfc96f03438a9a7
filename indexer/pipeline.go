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

// Package indexer builds the searchable catalog. It normalizes raw catalog
// entries, embeds their corpus text concurrently and persists the result.
// Indexing is an offline operation; serve-time code only reads its output.
package indexer

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/talentsift/assessrec/ai"
	"github.com/talentsift/assessrec/core"
	"github.com/talentsift/assessrec/index"
	"github.com/talentsift/assessrec/storage"
)

const defaultBatchSize = 16

// Pipeline embeds and persists catalog items.
type Pipeline struct {
	repository storage.CatalogRepository
	embedder   ai.Embedder
	pool       *ants.Pool
	batchSize  int
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many items go into one embedding request.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size > 0 {
			p.batchSize = size
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates an indexing pipeline.
func NewPipeline(repository storage.CatalogRepository, embedder ai.Embedder, opts ...Option) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrCatalogRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		repository: repository,
		embedder:   embedder,
		pool:       pool,
		batchSize:  defaultBatchSize,
		logger:     slog.Default().With("component", "indexer"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Index normalizes, embeds and persists the given catalog. Ordinals are
// assigned from slice position; callers pass the catalog in corpus order.
// The run is all-or-nothing: any embedding failure aborts before persisting.
func (p *Pipeline) Index(ctx context.Context, items []core.CatalogItem) error {
	if len(items) == 0 {
		return ErrNoItems
	}

	for i := range items {
		normalizeItem(&items[i], i)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for start := 0; start < len(items); start += p.batchSize {
		end := start + p.batchSize
		if end > len(items) {
			end = len(items)
		}
		batch := items[start:end]

		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()
			if err := p.embedBatch(ctx, batch); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = submitErr
			}
			mu.Unlock()
			break
		}
	}

	wg.Wait()
	if firstErr != nil {
		return firstErr
	}

	refs := make([]*core.CatalogItem, len(items))
	for i := range items {
		refs[i] = &items[i]
	}
	if _, err := p.repository.PutItems(ctx, refs...); err != nil {
		return err
	}

	p.logger.Info("catalog indexed", "items", len(items))
	return nil
}

// Release releases the worker pool. The pipeline should not be used after
// calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

func (p *Pipeline) embedBatch(ctx context.Context, batch []core.CatalogItem) error {
	texts := make([]string, len(batch))
	for i := range batch {
		texts[i] = index.CorpusText(&batch[i])
	}

	vectors, err := p.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return err
	}

	for i := range batch {
		batch[i].Vector = index.NormalizeL2(vectors[i])
	}
	return nil
}

// normalizeItem fills catalog defaults and expands short test type codes.
func normalizeItem(item *core.CatalogItem, ordinal int) {
	item.URL = core.CanonicalURL(item.URL)
	item.Ordinal = ordinal
	if item.Duration < 0 {
		item.Duration = 0
	}
	if item.RemoteSupport == "" {
		item.RemoteSupport = "Yes"
	}
	if item.AdaptiveSupport == "" {
		item.AdaptiveSupport = "No"
	}
	if item.TestTypes == nil {
		item.TestTypes = []string{}
	}
	for i, tt := range item.TestTypes {
		if full, ok := core.TestTypeNames[tt]; ok {
			item.TestTypes[i] = full
		}
	}
}
