package rank

import "errors"

var (
	// ErrScorerRequired indicates a Pipeline was created without a scorer.
	ErrScorerRequired = errors.New("scorer is required")

	// ErrResolverRequired indicates a Pipeline was created without an intent resolver.
	ErrResolverRequired = errors.New("intent resolver is required")
)
