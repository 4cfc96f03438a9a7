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

package assessrec

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentsift/assessrec/ai/mock"
	"github.com/talentsift/assessrec/core"
)

func newTestRecommender(t *testing.T, opts ...RecommenderOption) *Recommender {
	t.Helper()

	opts = append([]RecommenderOption{
		WithInMemoryStorage(),
		WithAIProvider(mock.NewMockProvider()),
	}, opts...)

	r, err := NewRecommender("", opts...)
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func indexTestCatalog(t *testing.T, r *Recommender) {
	t.Helper()

	items := make([]core.CatalogItem, 0, 12)
	for i := 0; i < 8; i++ {
		items = append(items, core.CatalogItem{
			Name:        fmt.Sprintf("Java Knowledge Test %d", i),
			URL:         fmt.Sprintf("https://www.shl.com/products/product-catalog/view/java-%d/", i),
			Description: "java programming assessment",
			Duration:    30,
			TestTypes:   []string{"K"},
		})
	}
	for i := 8; i < 12; i++ {
		items = append(items, core.CatalogItem{
			Name:        fmt.Sprintf("Personality Questionnaire %d", i),
			URL:         fmt.Sprintf("https://www.shl.com/products/product-catalog/view/opq-%d/", i),
			Description: "personality behavior questionnaire",
			Duration:    25,
			TestTypes:   []string{"P"},
		})
	}

	pipeline, err := r.NewIndexingPipeline()
	require.NoError(t, err)
	defer pipeline.Release()

	require.NoError(t, pipeline.Index(context.Background(), items))
	require.NoError(t, r.Reload(context.Background()))
}

func TestRecommenderEndToEnd(t *testing.T) {
	ctx := context.Background()
	r := newTestRecommender(t)
	indexTestCatalog(t, r)

	t.Run("free text query", func(t *testing.T) {
		recs, err := r.Recommend(ctx, "java developer", 10)
		require.NoError(t, err)
		require.NotEmpty(t, recs)
		assert.LessOrEqual(t, len(recs), 10)

		urls := make(map[string]bool)
		for _, rec := range recs {
			assert.False(t, urls[rec.URL], "duplicate URL %s", rec.URL)
			urls[rec.URL] = true
		}
	})

	t.Run("job posting URL query", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Write([]byte("<html><body><h1>Java Developer</h1><p>java programming role</p></body></html>"))
		}))
		defer server.Close()

		recs, err := r.Recommend(ctx, server.URL, 5)
		require.NoError(t, err)
		assert.NotEmpty(t, recs)
	})

	t.Run("unreachable posting URL degrades to query text", func(t *testing.T) {
		recs, err := r.Recommend(ctx, "http://127.0.0.1:1/java-developer-job", 5)
		require.NoError(t, err)
		assert.NotEmpty(t, recs)
	})
}

func TestRecommenderEmptyCatalog(t *testing.T) {
	r := newTestRecommender(t)
	recs, err := r.Recommend(context.Background(), "java developer", 10)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRecommenderReload(t *testing.T) {
	ctx := context.Background()
	r := newTestRecommender(t)

	recs, err := r.Recommend(ctx, "java", 10)
	require.NoError(t, err)
	require.Empty(t, recs)

	indexTestCatalog(t, r)

	recs, err = r.Recommend(ctx, "java", 10)
	require.NoError(t, err)
	assert.NotEmpty(t, recs)
}

func TestRecommenderHeuristicOnly(t *testing.T) {
	provider := mock.NewMockProvider().(*mock.MockProvider)
	r := newTestRecommender(t, WithHeuristicIntentOnly(), WithAIProvider(provider))
	indexTestCatalog(t, r)

	_, err := r.Recommend(context.Background(), "java developer under 40 minutes", 10)
	require.NoError(t, err)
	assert.Zero(t, provider.GetMockExtractor().CallCount())
}
