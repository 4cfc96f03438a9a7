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

// Package openai provides production implementations of the ai interfaces
// using OpenAI-compatible APIs (OpenAI, Ollama, LocalAI, vLLM, etc).
//
// All chat calls use JSON mode with temperature near zero and defensively
// clean the response (code fence stripping, JSON repair, object extraction)
// before decoding. Malformed output after retries surfaces as an error;
// callers are expected to degrade gracefully rather than propagate it to
// users.
package openai
