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

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/talentsift/assessrec/core"
	"github.com/talentsift/assessrec/storage"
)

// CatalogRepository implements storage.CatalogRepository for BadgerDB.
type CatalogRepository struct {
	backend *Backend
}

var _ storage.CatalogRepository = (*CatalogRepository)(nil)

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(backend *Backend) (*CatalogRepository, error) {
	return &CatalogRepository{backend: backend}, nil
}

// Close is a no-op; the shared backend owns the database handle.
func (r *CatalogRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *CatalogRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutItems inserts or replaces catalog items.
// Items arriving with Id=0 get a content ID derived from the canonical URL,
// so re-ingesting the same catalog entry overwrites rather than duplicates.
func (r *CatalogRepository) PutItems(ctx context.Context, items ...*core.CatalogItem) ([]*core.CatalogItem, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, item := range items {
			item.URL = core.CanonicalURL(item.URL)
			if item.Id == 0 {
				item.Id = core.IDFromContent(item.URL)
			}

			key := makeCatalogItemKey(item.Id)
			old, err := r.readCatalogItem(tx, key)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			if old == nil {
				item.InsertedAt = now
			} else {
				item.InsertedAt = old.InsertedAt
			}
			item.UpdatedAt = now

			value := storage.MarshalCatalogItem(item)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			urlKey := makeCatalogURLKey(item.URL)
			if err := tx.Set(urlKey, storage.MarshalID(item.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return items, err
}

// GetItem retrieves a single catalog item by ID.
func (r *CatalogRepository) GetItem(ctx context.Context, id core.ID) (*core.CatalogItem, error) {
	var item *core.CatalogItem
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		item, err = r.readCatalogItem(tx, makeCatalogItemKey(id))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, storage.ErrNotFound
	}
	return item, nil
}

// GetItemByURL retrieves a catalog item by its canonical URL.
func (r *CatalogRepository) GetItemByURL(ctx context.Context, url string) (*core.CatalogItem, error) {
	var item *core.CatalogItem
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		urlKey := makeCatalogURLKey(core.CanonicalURL(url))
		idItem, err := tx.Get(urlKey)
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}

		var id core.ID
		err = idItem.Value(func(val []byte) error {
			var unmarshalErr error
			id, unmarshalErr = storage.UnmarshalID(val)
			return unmarshalErr
		})
		if err != nil {
			return err
		}

		item, err = r.readCatalogItem(tx, makeCatalogItemKey(id))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, storage.ErrNotFound
	}
	return item, nil
}

// AllItems retrieves every catalog item ordered by ordinal ascending.
func (r *CatalogRepository) AllItems(ctx context.Context) ([]core.CatalogItem, error) {
	var items []core.CatalogItem
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(catalogItemPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var item *core.CatalogItem
			err := iter.Item().Value(func(val []byte) error {
				var unmarshalErr error
				item, unmarshalErr = storage.UnmarshalCatalogItem(val)
				return unmarshalErr
			})
			if err != nil {
				return err
			}
			if item != nil {
				items = append(items, *item)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(items, func(a, b core.CatalogItem) int {
		return a.Ordinal - b.Ordinal
	})

	return items, nil
}

// CountItems returns the number of stored catalog items.
func (r *CatalogRepository) CountItems(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(catalogItemPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// DeleteItems removes catalog items by their IDs.
func (r *CatalogRepository) DeleteItems(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeCatalogItemKey(id)

			item, err := r.readCatalogItem(tx, key)
			if err != nil {
				return err
			}
			if item == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(makeCatalogURLKey(item.URL)); err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// readCatalogItem reads an item within a transaction.
// Returns nil, nil if the key doesn't exist.
func (r *CatalogRepository) readCatalogItem(tx *badger.Txn, key []byte) (*core.CatalogItem, error) {
	txItem, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var item *core.CatalogItem
	err = txItem.Value(func(val []byte) error {
		var unmarshalErr error
		item, unmarshalErr = storage.UnmarshalCatalogItem(val)
		return unmarshalErr
	})
	return item, err
}
