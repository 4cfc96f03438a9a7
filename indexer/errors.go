package indexer

import "errors"

var (
	// ErrCatalogRepositoryRequired indicates a Pipeline was created without a repository.
	ErrCatalogRepositoryRequired = errors.New("catalog repository is required")

	// ErrEmbedderRequired indicates a Pipeline was created without an embedder.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrNoItems indicates an indexing run was started with an empty catalog.
	ErrNoItems = errors.New("no catalog items to index")
)
