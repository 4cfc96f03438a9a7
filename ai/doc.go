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

// Package ai provides abstractions for the AI services used by the
// recommendation engine.
//
// This package defines interfaces for text embeddings, intent extraction and
// relevance judgments. It follows the dependency inversion principle, allowing
// the retrieval and ranking logic to depend on abstractions rather than
// concrete implementations.
//
// # Design Principles
//
// The package is designed around four key interfaces:
//
//   - Embedder: Generates vector embeddings from text
//   - IntentExtractor: Converts hiring queries into structured Intent values
//   - RelevanceJudge: Scores candidate assessments against a query
//   - AIProvider: Aggregates AI services for convenient initialization
//
// # Implementation Packages
//
// The ai package includes three implementation sub-packages:
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/heuristic: Deterministic IntentExtractor used as a fallback when
//     the LLM-backed extractor is unavailable or fails
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// External services are treated as unreliable by contract: every caller of
// IntentExtractor and RelevanceJudge must tolerate errors, timeouts and
// malformed output. The heuristic extractor never returns an error.
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewProvider, openai.NewEmbedder, etc.) return
// interface types to enforce abstraction and prevent accidental coupling to
// concrete implementations. Test utility constructors in ai/mock return
// concrete types to enable test assertions and behavior injection.
package ai
