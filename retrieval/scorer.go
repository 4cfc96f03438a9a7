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

package retrieval

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/talentsift/assessrec/ai"
	"github.com/talentsift/assessrec/core"
	"github.com/talentsift/assessrec/index"
)

const (
	// DefaultAlpha is the lexical weight in the hybrid blend. Tuned on the
	// benchmark query set; semantic signal dominates slightly.
	DefaultAlpha = 0.39

	// DefaultTopN caps how many scored documents a retrieve pass returns.
	DefaultTopN = 200

	// normEpsilon guards the min-max normalization against flat score
	// distributions.
	normEpsilon = 1e-6
)

// Scorer ranks the indexed corpus against a query. Implementations must be
// safe for concurrent use.
type Scorer interface {
	// Score returns up to topN documents ordered by descending relevance.
	// Ties break on ascending ordinal so ranking is deterministic.
	// topN <= 0 means no cap. An empty corpus yields an empty result.
	Score(ctx context.Context, query string, topN int) ([]core.ScoredDoc, error)
}

// HybridScorer blends BM25 and embedding similarity. Both signal vectors are
// min-max normalized to [0,1] before blending so neither scale dominates.
type HybridScorer struct {
	lexical  *index.Lexical
	vectors  [][]float32
	embedder ai.Embedder
	alpha    float64
	logger   *slog.Logger
}

var _ Scorer = (*HybridScorer)(nil)

// HybridOption configures a HybridScorer.
type HybridOption func(*HybridScorer)

// WithAlpha sets the lexical weight of the blend. Values are clamped to [0,1].
func WithAlpha(alpha float64) HybridOption {
	return func(s *HybridScorer) {
		if alpha < 0 {
			alpha = 0
		}
		if alpha > 1 {
			alpha = 1
		}
		s.alpha = alpha
	}
}

// NewHybridScorer builds a scorer over the given catalog. Item vectors are
// taken from the items themselves; they must be unit-normalized, which the
// indexer guarantees.
func NewHybridScorer(items []core.CatalogItem, embedder ai.Embedder, opts ...HybridOption) *HybridScorer {
	vectors := make([][]float32, len(items))
	for i := range items {
		vectors[i] = items[i].Vector
	}

	s := &HybridScorer{
		lexical:  index.BuildLexical(items),
		vectors:  vectors,
		embedder: embedder,
		alpha:    DefaultAlpha,
		logger:   slog.Default().With("component", "hybrid_scorer"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score implements Scorer.
func (s *HybridScorer) Score(ctx context.Context, query string, topN int) ([]core.ScoredDoc, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if s.lexical.Len() == 0 {
		return []core.ScoredDoc{}, nil
	}

	// Lexical scoring is CPU-bound; run it while the embedding call is
	// in flight.
	lexCh := make(chan []float64, 1)
	go func() {
		lexCh <- s.lexical.Scores(index.Tokenize(query))
	}()

	queryVec, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		<-lexCh
		return nil, fmt.Errorf("%w: %v", ErrEmbeddingFailed, err)
	}
	queryVec = index.NormalizeL2(queryVec)

	sem := make([]float64, len(s.vectors))
	for i, vec := range s.vectors {
		if len(vec) == 0 {
			continue
		}
		sem[i] = float64(index.Dot(queryVec, vec))
	}

	lex := <-lexCh

	blended := blend(lex, sem, s.alpha)
	return topDocs(blended, topN), nil
}

// LexicalScorer scores with BM25 only. Used when embeddings are unavailable.
type LexicalScorer struct {
	lexical *index.Lexical
}

var _ Scorer = (*LexicalScorer)(nil)

// NewLexicalScorer builds a BM25-only scorer over the given catalog.
func NewLexicalScorer(items []core.CatalogItem) *LexicalScorer {
	return &LexicalScorer{lexical: index.BuildLexical(items)}
}

// Score implements Scorer.
func (s *LexicalScorer) Score(ctx context.Context, query string, topN int) ([]core.ScoredDoc, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if s.lexical.Len() == 0 {
		return []core.ScoredDoc{}, nil
	}

	scores := minMaxNormalize(s.lexical.Scores(index.Tokenize(query)))
	return topDocs(scores, topN), nil
}

// blend combines normalized lexical and semantic scores.
// score = alpha*lexical + (1-alpha)*semantic.
func blend(lex, sem []float64, alpha float64) []float64 {
	lex = minMaxNormalize(lex)
	sem = minMaxNormalize(sem)

	out := make([]float64, len(lex))
	for i := range out {
		out[i] = alpha*lex[i] + (1-alpha)*sem[i]
	}
	return out
}

// minMaxNormalize rescales scores to [0,1]. A flat distribution maps to all
// zeros rather than dividing by a vanishing range.
func minMaxNormalize(scores []float64) []float64 {
	if len(scores) == 0 {
		return scores
	}
	min, max := scores[0], scores[0]
	for _, v := range scores[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	out := make([]float64, len(scores))
	span := max - min
	if span < normEpsilon {
		return out
	}
	for i, v := range scores {
		out[i] = (v - min) / span
	}
	return out
}

// topDocs converts an ordinal-indexed score vector to a sorted ScoredDoc list.
func topDocs(scores []float64, topN int) []core.ScoredDoc {
	docs := make([]core.ScoredDoc, len(scores))
	for i, score := range scores {
		docs[i] = core.ScoredDoc{Ordinal: i, Score: score}
	}

	slices.SortFunc(docs, func(a, b core.ScoredDoc) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return a.Ordinal - b.Ordinal
	})

	if topN > 0 && len(docs) > topN {
		docs = docs[:topN]
	}
	return docs
}
