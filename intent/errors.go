package intent

import "errors"

// ErrNoFallback indicates a Resolver was constructed without a fallback extractor.
var ErrNoFallback = errors.New("fallback extractor is required")
