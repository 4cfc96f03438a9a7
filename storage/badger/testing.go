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

package badger

import "github.com/talentsift/assessrec/storage"

// NewRepositories opens a database at path and creates catalog and intent
// cache repositories sharing the same backend.
// Caller must close both repos and the backend when done.
func NewRepositories(path string) (storage.CatalogRepository, storage.IntentCacheRepository, *Backend, error) {
	return newRepositories(path, false)
}

// NewMemoryRepositories creates in-memory catalog and intent cache
// repositories for testing.
func NewMemoryRepositories() (storage.CatalogRepository, storage.IntentCacheRepository, *Backend, error) {
	return newRepositories("", true)
}

func newRepositories(path string, inMemory bool) (storage.CatalogRepository, storage.IntentCacheRepository, *Backend, error) {
	backend, err := OpenBackend(path, inMemory)
	if err != nil {
		return nil, nil, nil, err
	}

	catalogRepo, err := NewCatalogRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, err
	}

	intentRepo, err := NewIntentCacheRepository(backend)
	if err != nil {
		catalogRepo.Close()
		backend.Close()
		return nil, nil, nil, err
	}

	return catalogRepo, intentRepo, backend, nil
}
