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

package mock

import "github.com/talentsift/assessrec/ai"

// MockProvider is a test double for ai.AIProvider.
// It aggregates mock embedder, extractor and judge instances.
type MockProvider struct {
	embedder  *MockEmbedder
	extractor *MockIntentExtractor
	judge     *MockRelevanceJudge
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.AIProvider interface for consistency with production constructors.
// Use GetMockEmbedder()/GetMockExtractor()/GetMockJudge() to access concrete
// types for test assertions.
func NewMockProvider() ai.AIProvider {
	return &MockProvider{
		embedder:  NewMockEmbedder(),
		extractor: NewMockIntentExtractor(),
		judge:     NewMockRelevanceJudge(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom mock services.
// This allows full control over the behavior of each service.
func NewMockProviderWithServices(embedder *MockEmbedder, extractor *MockIntentExtractor, judge *MockRelevanceJudge) ai.AIProvider {
	return &MockProvider{
		embedder:  embedder,
		extractor: extractor,
		judge:     judge,
	}
}

// Embedder returns the mock embedder.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

// IntentExtractor returns the mock intent extractor.
func (p *MockProvider) IntentExtractor() ai.IntentExtractor {
	return p.extractor
}

// RelevanceJudge returns the mock relevance judge.
func (p *MockProvider) RelevanceJudge() ai.RelevanceJudge {
	return p.judge
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockEmbedder returns the underlying mock embedder for test assertions.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}

// GetMockExtractor returns the underlying mock intent extractor for test assertions.
func (p *MockProvider) GetMockExtractor() *MockIntentExtractor {
	return p.extractor
}

// GetMockJudge returns the underlying mock relevance judge for test assertions.
func (p *MockProvider) GetMockJudge() *MockRelevanceJudge {
	return p.judge
}
