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

// Package jdtext fetches job description postings and reduces them to plain
// text suitable for retrieval queries.
package jdtext

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/talentsift/assessrec/index"
)

const (
	defaultFetchTimeout = 20 * time.Second
	userAgent           = "assessrec/1.0"
)

var (
	// ErrFetchFailed indicates the posting could not be retrieved.
	ErrFetchFailed = errors.New("job description fetch failed")

	// ErrNoText indicates the fetched page contained no extractable text.
	ErrNoText = errors.New("no text extracted from page")
)

// LooksLikeURL reports whether a query string is a fetchable http(s) URL
// rather than free text.
func LooksLikeURL(s string) bool {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Host != ""
}

// Extractor fetches job postings over HTTP and strips them to text.
type Extractor struct {
	client *http.Client
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTimeout bounds a single fetch.
func WithTimeout(d time.Duration) Option {
	return func(e *Extractor) {
		if d > 0 {
			e.client.Timeout = d
		}
	}
}

// WithHTTPClient replaces the HTTP client, mainly for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(e *Extractor) {
		if client != nil {
			e.client = client
		}
	}
}

// NewExtractor creates an Extractor with a default client.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		client: &http.Client{Timeout: defaultFetchTimeout},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractText fetches a job posting and returns its visible text with
// whitespace collapsed. Script, style and noscript content is dropped.
func (e *Extractor) ExtractText(ctx context.Context, postingURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, postingURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	doc.Find("script, style, noscript").Remove()

	text := doc.Find("body").Text()
	if text == "" {
		text = doc.Text()
	}
	text = index.NormalizeWhitespace(text)
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}
