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

package jdtext

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooksLikeURL(t *testing.T) {
	assert.True(t, LooksLikeURL("https://example.com/jobs/123"))
	assert.True(t, LooksLikeURL("  http://example.com  "))
	assert.False(t, LooksLikeURL("senior java developer"))
	assert.False(t, LooksLikeURL("ftp://example.com/file"))
	assert.False(t, LooksLikeURL("https://"))
	assert.False(t, LooksLikeURL(""))
}

func TestExtractText(t *testing.T) {
	ctx := context.Background()

	t.Run("extracts visible text only", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
			w.Write([]byte(`<html><head><style>body { color: red }</style></head>
				<body>
					<script>var tracking = true;</script>
					<h1>Senior   Java Developer</h1>
					<p>We need strong collaboration skills.</p>
					<noscript>enable js</noscript>
				</body></html>`))
		}))
		defer server.Close()

		text, err := NewExtractor().ExtractText(ctx, server.URL)
		require.NoError(t, err)
		assert.Equal(t, "Senior Java Developer We need strong collaboration skills.", text)
		assert.NotContains(t, text, "tracking")
		assert.NotContains(t, text, "enable js")
	})

	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		_, err := NewExtractor().ExtractText(ctx, server.URL)
		assert.ErrorIs(t, err, ErrFetchFailed)
	})

	t.Run("empty page", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html><body><script>x()</script></body></html>"))
		}))
		defer server.Close()

		_, err := NewExtractor().ExtractText(ctx, server.URL)
		assert.ErrorIs(t, err, ErrNoText)
	})

	t.Run("unreachable host", func(t *testing.T) {
		_, err := NewExtractor().ExtractText(ctx, "http://127.0.0.1:1/jobs")
		assert.ErrorIs(t, err, ErrFetchFailed)
	})
}
