package mock

import (
	"context"

	"github.com/talentsift/assessrec/core"
)

// MockIntentExtractor is a test double for ai.IntentExtractor.
// It allows custom behavior injection via function fields.
type MockIntentExtractor struct {
	// ExtractIntentFunc is called by ExtractIntent if set.
	// If nil, returns a fixed knowledge-heavy intent.
	ExtractIntentFunc func(ctx context.Context, query string) (*core.Intent, error)

	callCount int
}

// NewMockIntentExtractor creates a mock intent extractor with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockExtractor().
func NewMockIntentExtractor() *MockIntentExtractor {
	return &MockIntentExtractor{}
}

// ExtractIntent returns a fixed intent unless a custom function is injected.
func (m *MockIntentExtractor) ExtractIntent(ctx context.Context, query string) (*core.Intent, error) {
	m.callCount++

	if m.ExtractIntentFunc != nil {
		return m.ExtractIntentFunc(ctx, query)
	}

	return &core.Intent{
		Seniority:      core.SeniorityUnknown,
		RemoteRequired: core.RemoteUnknown,
		DomainMix:      core.DefaultDomainMix(),
	}, nil
}

// CallCount returns the number of times ExtractIntent was called.
func (m *MockIntentExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockIntentExtractor) Reset() {
	m.callCount = 0
	m.ExtractIntentFunc = nil
}
