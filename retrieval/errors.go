package retrieval

import "errors"

var (
	// ErrEmptyQuery indicates that the query text was empty after normalization.
	ErrEmptyQuery = errors.New("empty query")

	// ErrEmbeddingFailed indicates that the query could not be embedded.
	ErrEmbeddingFailed = errors.New("embedding failed")
)
