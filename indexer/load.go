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

package indexer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/talentsift/assessrec/core"
)

// catalogEntry is the raw JSON shape of one scraped catalog row.
type catalogEntry struct {
	URL             string   `json:"url"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Duration        int      `json:"duration"`
	TestTypes       []string `json:"test_type"`
	RemoteSupport   string   `json:"remote_support"`
	AdaptiveSupport string   `json:"adaptive_support"`
}

// LoadCatalogJSON reads a scraped catalog file, a JSON array of entries.
// Entries without a URL or name are skipped.
func LoadCatalogJSON(path string) ([]core.CatalogItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []catalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	items := make([]core.CatalogItem, 0, len(entries))
	for _, e := range entries {
		if e.URL == "" || e.Name == "" {
			continue
		}
		items = append(items, core.CatalogItem{
			URL:             e.URL,
			Name:            e.Name,
			Description:     e.Description,
			Duration:        e.Duration,
			TestTypes:       e.TestTypes,
			RemoteSupport:   e.RemoteSupport,
			AdaptiveSupport: e.AdaptiveSupport,
		})
	}
	return items, nil
}
