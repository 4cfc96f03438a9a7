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

package core

import (
	"regexp"
	"strings"
)

// The vendor publishes catalog pages under two path prefixes,
// /solutions/products/product-catalog/ and /products/product-catalog/.
// Both resolve to the same assessment, so URLs are collapsed onto the
// shorter prefix before comparison or storage.
var catalogSlugPattern = regexp.MustCompile(`/product-catalog/view/([^/?#]+)/?`)

const canonicalCatalogBase = "https://www.shl.com/products/product-catalog/view/"

// CanonicalURL normalizes a catalog URL so equivalent path representations
// compare equal. URLs that do not point at a catalog entry keep their host
// and path, normalized to a single trailing slash.
func CanonicalURL(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return url
	}
	m := catalogSlugPattern.FindStringSubmatch(url)
	if m == nil {
		return strings.TrimRight(url, "/") + "/"
	}
	return canonicalCatalogBase + m[1] + "/"
}
