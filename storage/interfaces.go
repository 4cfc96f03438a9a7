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

package storage

import (
	"context"

	"github.com/talentsift/assessrec/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// CatalogRepository provides operations for managing catalog items.
type CatalogRepository interface {
	Repository
	// PutItems inserts or replaces catalog items.
	// For items with Id=0, derives a content ID from the canonical URL.
	// Sets InsertedAt on first insert and UpdatedAt on replace.
	// Returns the items with IDs and timestamps populated.
	PutItems(ctx context.Context, items ...*core.CatalogItem) ([]*core.CatalogItem, error)

	// GetItem retrieves a single catalog item by ID.
	// Returns ErrNotFound if the item doesn't exist.
	GetItem(ctx context.Context, id core.ID) (*core.CatalogItem, error)

	// GetItemByURL retrieves a catalog item by its canonical URL.
	// Returns ErrNotFound if no matching item exists.
	GetItemByURL(ctx context.Context, url string) (*core.CatalogItem, error)

	// AllItems retrieves every catalog item ordered by ordinal ascending.
	AllItems(ctx context.Context) ([]core.CatalogItem, error)

	// CountItems returns the number of stored catalog items.
	CountItems(ctx context.Context) (int, error)

	// DeleteItems removes catalog items by their IDs.
	// Returns ErrNotFound if any item doesn't exist.
	DeleteItems(ctx context.Context, ids ...core.ID) error
}

// IntentCacheRepository provides a durable cache for extracted intents.
// Keys are opaque strings owned by the caller.
type IntentCacheRepository interface {
	Repository
	// GetIntent retrieves a cached intent by key.
	// Returns ErrNotFound on a cache miss.
	GetIntent(ctx context.Context, key string) (*core.Intent, error)

	// PutIntent stores an intent under the given key, replacing any
	// previous entry.
	PutIntent(ctx context.Context, key string, intent *core.Intent) error

	// DeleteIntent removes a cached intent. Missing keys are not an error.
	DeleteIntent(ctx context.Context, key string) error
}
