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
	"fmt"

	"github.com/talentsift/assessrec/core"
)

// Key prefixes for different data types
const (
	catalogItemPrefix = "catrec"
	catalogURLPrefix  = "caturl"
	intentCachePrefix = "intcache"
)

// makeCatalogItemKey generates a key for a catalog item by ID.
func makeCatalogItemKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", catalogItemPrefix, id))
}

// makeCatalogURLKey generates a key for the URL index.
// Format: prefix:canonicalURL
func makeCatalogURLKey(url string) []byte {
	return []byte(catalogURLPrefix + ":" + url)
}

// makeIntentCacheKey generates a key for a cached intent.
func makeIntentCacheKey(cacheKey string) []byte {
	return []byte(intentCachePrefix + ":" + cacheKey)
}
