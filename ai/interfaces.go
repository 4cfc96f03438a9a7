package ai

import (
	"context"

	"github.com/talentsift/assessrec/core"
)

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// IntentExtractor converts a free-text hiring query into a structured Intent.
// Implementations must be thread-safe for concurrent use.
type IntentExtractor interface {
	// ExtractIntent analyzes a hiring query or job description and extracts
	// skills, roles, seniority, constraints and the target category mix.
	// Returns an error if extraction fails; callers are expected to fall
	// back to a heuristic extractor in that case.
	ExtractIntent(ctx context.Context, query string) (*core.Intent, error)
}

// RelevanceJudge scores how well candidate assessments match a hiring query.
// Implementations must be thread-safe for concurrent use.
type RelevanceJudge interface {
	// JudgeRelevance returns a relevance score in [0,1] per assessment,
	// keyed by assessment name. Items missing from the returned map should
	// be treated as neutral by the caller.
	JudgeRelevance(ctx context.Context, query string, items []core.CatalogItem) (map[string]float64, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder, IntentExtractor and RelevanceJudge
// instances, ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// IntentExtractor returns the intent extraction service.
	// The returned IntentExtractor is safe for concurrent use.
	IntentExtractor() IntentExtractor

	// RelevanceJudge returns the relevance judgment service.
	// The returned RelevanceJudge is safe for concurrent use.
	RelevanceJudge() RelevanceJudge

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
