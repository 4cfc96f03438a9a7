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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentsift/assessrec/core"
	"github.com/talentsift/assessrec/storage"
)

func TestIntentCacheRepository(t *testing.T) {
	_, repo := setupCatalogTest(t)
	ctx := context.Background()

	intent := &core.Intent{
		HardSkills:           []string{"java", "sql"},
		SoftSkills:           []string{"collaboration"},
		Roles:                []string{"developer"},
		Seniority:            core.SeniorityMid,
		DurationLimitMinutes: 40,
		RemoteRequired:       core.RemoteRequired,
		DomainMix:            core.DomainMix{K: 0.6, P: 0.4},
	}

	t.Run("miss returns ErrNotFound", func(t *testing.T) {
		_, err := repo.GetIntent(ctx, "intent::qwen2.5:3b::java developer")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("round trip", func(t *testing.T) {
		key := "intent::qwen2.5:3b::java developer"
		require.NoError(t, repo.PutIntent(ctx, key, intent))

		got, err := repo.GetIntent(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, intent.HardSkills, got.HardSkills)
		assert.Equal(t, intent.SoftSkills, got.SoftSkills)
		assert.Equal(t, intent.Seniority, got.Seniority)
		assert.Equal(t, 40, got.DurationLimitMinutes)
		assert.Equal(t, core.RemoteRequired, got.RemoteRequired)
		assert.InDelta(t, 0.6, got.DomainMix.K, 1e-9)
	})

	t.Run("put replaces previous entry", func(t *testing.T) {
		key := "intent::qwen2.5:3b::replaced"
		require.NoError(t, repo.PutIntent(ctx, key, intent))

		updated := *intent
		updated.DurationLimitMinutes = 25
		require.NoError(t, repo.PutIntent(ctx, key, &updated))

		got, err := repo.GetIntent(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, 25, got.DurationLimitMinutes)
	})

	t.Run("delete", func(t *testing.T) {
		key := "intent::qwen2.5:3b::deleted"
		require.NoError(t, repo.PutIntent(ctx, key, intent))
		require.NoError(t, repo.DeleteIntent(ctx, key))

		_, err := repo.GetIntent(ctx, key)
		assert.ErrorIs(t, err, storage.ErrNotFound)

		// deleting again is fine
		assert.NoError(t, repo.DeleteIntent(ctx, key))
	})
}
