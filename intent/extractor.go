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

// Package intent resolves the structured intent for a hiring query.
//
// Resolution is a three-step chain: durable cache, then the LLM extractor,
// then a deterministic heuristic. Only genuine LLM extractions are cached;
// heuristic results are cheap to recompute and caching them would mask a
// recovered LLM.
package intent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/talentsift/assessrec/ai"
	"github.com/talentsift/assessrec/core"
	"github.com/talentsift/assessrec/storage"
)

const defaultExtractTimeout = 30 * time.Second

// Resolver produces an Intent for a query, consulting the cache first and
// degrading to the heuristic extractor when the LLM is unavailable.
type Resolver struct {
	primary  ai.IntentExtractor
	fallback ai.IntentExtractor
	cache    storage.IntentCacheRepository
	model    string
	timeout  time.Duration
	logger   *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithTimeout bounds each LLM extraction attempt.
func WithTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithCache attaches a durable intent cache. Without one, every query goes
// to the extractor chain.
func WithCache(cache storage.IntentCacheRepository) Option {
	return func(r *Resolver) {
		r.cache = cache
	}
}

// NewResolver creates a Resolver. primary may be nil, in which case every
// query resolves through fallback. model names the chat model and partitions
// the cache, so switching models never serves stale extractions.
func NewResolver(primary, fallback ai.IntentExtractor, model string, opts ...Option) (*Resolver, error) {
	if fallback == nil {
		return nil, ErrNoFallback
	}

	r := &Resolver{
		primary:  primary,
		fallback: fallback,
		model:    model,
		timeout:  defaultExtractTimeout,
		logger:   slog.Default().With("component", "intent_resolver"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// CacheKey returns the cache key for a query under the given model.
func CacheKey(model, query string) string {
	return fmt.Sprintf("intent::%s::%s", model, query)
}

// Resolve returns the intent for a query. It never fails on extractor
// errors; the heuristic fallback always produces a usable intent. The only
// error paths are context cancellation and cache write failures being logged,
// not returned.
func (r *Resolver) Resolve(ctx context.Context, query string) (*core.Intent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := CacheKey(r.model, query)

	if r.cache != nil {
		cached, err := r.cache.GetIntent(ctx, key)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			r.logger.Warn("intent cache read failed", "error", err)
		}
	}

	if r.primary != nil {
		extractCtx, cancel := context.WithTimeout(ctx, r.timeout)
		extracted, err := r.primary.ExtractIntent(extractCtx, query)
		cancel()
		if err == nil {
			if r.cache != nil {
				if cacheErr := r.cache.PutIntent(ctx, key, extracted); cacheErr != nil {
					r.logger.Warn("intent cache write failed", "error", cacheErr)
				}
			}
			return extracted, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		r.logger.Warn("llm intent extraction failed, using heuristic", "error", err)
	}

	return r.fallback.ExtractIntent(ctx, query)
}
