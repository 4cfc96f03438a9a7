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

// Package storage provides the storage abstraction layer for assessrec.
//
// This package defines repository interfaces that decouple storage
// implementation from business logic, so different backends (BadgerDB,
// in-memory, etc.) can be used interchangeably.
//
// # Constructor Return Type Pattern
//
// This package follows a strict "return interface" pattern for all public
// constructors:
//
//	repo, err := badger.NewCatalogRepository(path)  // returns storage.CatalogRepository
//
// Internal constructors (newBackend, etc.) may return concrete types since
// they are only used within the implementation package.
//
// # Architecture
//
//   - Repository: common lifecycle and transaction operations
//   - CatalogRepository: operations for catalog items
//   - IntentCacheRepository: durable cache for extracted intents
//
// # Usage
//
// Create repositories backed by a shared database:
//
//	catalog, cache, err := badger.NewRepositories("/path/to/db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer catalog.Close()
//
// Use in tests with in-memory storage:
//
//	catalog, cache, err := badger.NewMemoryRepositories()
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support concurrent
// access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation and timeout
// support.
package storage
