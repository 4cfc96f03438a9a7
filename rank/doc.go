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

// Package rank turns scored retrieval output into a final recommendation
// list. Stages run in a fixed order: constraint filtering, optional score
// boosts, optional LLM reranking, then quota-balanced selection. Every
// stage takes a candidate slice in and returns a fresh slice out.
package rank
