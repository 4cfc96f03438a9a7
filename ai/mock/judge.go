package mock

import (
	"context"

	"github.com/talentsift/assessrec/core"
)

// MockRelevanceJudge is a test double for ai.RelevanceJudge.
// It allows custom behavior injection via function fields.
type MockRelevanceJudge struct {
	// JudgeRelevanceFunc is called by JudgeRelevance if set.
	// If nil, every item receives a neutral 0.5 score.
	JudgeRelevanceFunc func(ctx context.Context, query string, items []core.CatalogItem) (map[string]float64, error)

	callCount int
}

// NewMockRelevanceJudge creates a mock relevance judge with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockJudge().
func NewMockRelevanceJudge() *MockRelevanceJudge {
	return &MockRelevanceJudge{}
}

// JudgeRelevance scores every item 0.5 unless a custom function is injected.
func (m *MockRelevanceJudge) JudgeRelevance(ctx context.Context, query string, items []core.CatalogItem) (map[string]float64, error) {
	m.callCount++

	if m.JudgeRelevanceFunc != nil {
		return m.JudgeRelevanceFunc(ctx, query, items)
	}

	scores := make(map[string]float64, len(items))
	for _, item := range items {
		scores[item.Name] = 0.5
	}
	return scores, nil
}

// CallCount returns the number of times JudgeRelevance was called.
func (m *MockRelevanceJudge) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockRelevanceJudge) Reset() {
	m.callCount = 0
	m.JudgeRelevanceFunc = nil
}
