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

	"github.com/dgraph-io/badger/v4"
	"github.com/talentsift/assessrec/core"
	"github.com/talentsift/assessrec/storage"
)

// IntentCacheRepository implements storage.IntentCacheRepository for BadgerDB.
type IntentCacheRepository struct {
	backend *Backend
}

var _ storage.IntentCacheRepository = (*IntentCacheRepository)(nil)

// NewIntentCacheRepository creates a new IntentCacheRepository.
func NewIntentCacheRepository(backend *Backend) (*IntentCacheRepository, error) {
	return &IntentCacheRepository{backend: backend}, nil
}

// Close is a no-op; the shared backend owns the database handle.
func (r *IntentCacheRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *IntentCacheRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// GetIntent retrieves a cached intent by key.
func (r *IntentCacheRepository) GetIntent(ctx context.Context, key string) (*core.Intent, error) {
	var intent *core.Intent
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeIntentCacheKey(key))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}

		return item.Value(func(val []byte) error {
			var unmarshalErr error
			intent, unmarshalErr = storage.UnmarshalIntent(val)
			return unmarshalErr
		})
	}, false)
	if err != nil {
		return nil, err
	}
	if intent == nil {
		return nil, storage.ErrNotFound
	}
	return intent, nil
}

// PutIntent stores an intent under the given key.
func (r *IntentCacheRepository) PutIntent(ctx context.Context, key string, intent *core.Intent) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		value := storage.MarshalIntent(intent)
		if err := tx.Set(makeIntentCacheKey(key), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// DeleteIntent removes a cached intent.
func (r *IntentCacheRepository) DeleteIntent(ctx context.Context, key string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		err := tx.Delete(makeIntentCacheKey(key))
		if err != nil && err != badger.ErrKeyNotFound {
			return err
		}
		return tx.Commit()
	}, true)
}
