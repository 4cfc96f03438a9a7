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

import "math"

// Okapi BM25 parameters. Standard values; retrieval quality was tuned via
// the blend weight, not these.
const (
	bm25K1 = 1.5
	bm25B  = 0.75
)

// Lexical is a token-frequency relevance index over the catalog corpus.
// It is immutable after construction and safe for concurrent use.
type Lexical struct {
	termFreqs []map[string]int // per-document term frequencies, by ordinal
	docLens   []int
	avgDocLen float64
	idf       map[string]float64
}

// NewLexical builds a BM25 index from pre-tokenized documents.
// Document position is the corpus ordinal used in all score vectors.
func NewLexical(docs [][]string) *Lexical {
	n := len(docs)
	termFreqs := make([]map[string]int, n)
	docLens := make([]int, n)
	docFreq := make(map[string]int)

	var totalLen int
	for i, tokens := range docs {
		tf := make(map[string]int, len(tokens))
		for _, tok := range tokens {
			tf[tok]++
		}
		for tok := range tf {
			docFreq[tok]++
		}
		termFreqs[i] = tf
		docLens[i] = len(tokens)
		totalLen += len(tokens)
	}

	avgDocLen := 0.0
	if n > 0 {
		avgDocLen = float64(totalLen) / float64(n)
	}

	idf := make(map[string]float64, len(docFreq))
	for tok, df := range docFreq {
		idf[tok] = math.Log(1 + (float64(n)-float64(df)+0.5)/(float64(df)+0.5))
	}

	return &Lexical{
		termFreqs: termFreqs,
		docLens:   docLens,
		avgDocLen: avgDocLen,
		idf:       idf,
	}
}

// Len returns the number of indexed documents.
func (l *Lexical) Len() int {
	return len(l.termFreqs)
}

// Scores returns the BM25 score of every document for the query tokens,
// indexed by corpus ordinal. Unknown tokens contribute nothing.
func (l *Lexical) Scores(queryTokens []string) []float64 {
	scores := make([]float64, len(l.termFreqs))
	if l.avgDocLen == 0 {
		return scores
	}

	for _, tok := range queryTokens {
		idf, ok := l.idf[tok]
		if !ok {
			continue
		}
		for i, tf := range l.termFreqs {
			freq := float64(tf[tok])
			if freq == 0 {
				continue
			}
			norm := bm25K1 * (1 - bm25B + bm25B*float64(l.docLens[i])/l.avgDocLen)
			scores[i] += idf * freq * (bm25K1 + 1) / (freq + norm)
		}
	}

	return scores
}
