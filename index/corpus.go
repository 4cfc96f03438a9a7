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

package index

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/talentsift/assessrec/core"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// NormalizeWhitespace collapses runs of whitespace to single spaces and trims.
func NormalizeWhitespace(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

// Tokenize lowercases text and splits on normalized whitespace.
// The same tokenizer must be used at index build time and query time.
func Tokenize(text string) []string {
	text = strings.ToLower(text)
	parts := strings.Split(NormalizeWhitespace(text), " ")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// CorpusText composes the searchable text for one catalog item. Duration,
// remote and adaptive flags are spelled out so queries like "40 minutes" and
// "remote" get lexical signal.
func CorpusText(item *core.CatalogItem) string {
	fields := []string{
		item.Name,
		item.Description,
		strings.Join(item.TestTypes, " "),
		fmt.Sprintf("Duration %d minutes", item.Duration),
		fmt.Sprintf("Remote %s", item.RemoteSupport),
		fmt.Sprintf("Adaptive %s", item.AdaptiveSupport),
	}
	return NormalizeWhitespace(strings.Join(fields, " . "))
}

// BuildLexical builds the lexical index for a catalog, ordered by ordinal.
func BuildLexical(items []core.CatalogItem) *Lexical {
	docs := make([][]string, len(items))
	for i := range items {
		docs[i] = Tokenize(CorpusText(&items[i]))
	}
	return NewLexical(docs)
}
