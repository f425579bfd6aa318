package retrieval

import (
	"context"
	"sort"
	"strings"
)

const minTermLength = 3

// LexicalSearcher is the keyword baseline strategy: chunks are scored by
// summed occurrence counts of the query terms. It holds the corpus in
// memory and is safe for concurrent readers because the chunk slice is
// never mutated after construction.
type LexicalSearcher struct {
	chunks []DocumentChunk
}

// NewLexicalSearcher creates a searcher over the given chunks.
// Insertion order is preserved and used as the tie-break for equal scores.
func NewLexicalSearcher(chunks []DocumentChunk) *LexicalSearcher {
	return &LexicalSearcher{chunks: chunks}
}

// Search scores every chunk by the number of times each query term occurs
// in its lowercased text, keeps chunks with a positive score, and returns
// the topK highest scored. Ties preserve insertion order.
func (s *LexicalSearcher) Search(_ context.Context, query string, topK int) ([]Result, error) {
	terms := queryTerms(query)
	if len(terms) == 0 || topK <= 0 {
		return nil, nil
	}

	var scored []Result
	for _, chunk := range s.chunks {
		textLower := strings.ToLower(chunk.Text)
		var score int
		for _, term := range terms {
			score += strings.Count(textLower, term)
		}
		if score > 0 {
			scored = append(scored, Result{Chunk: chunk, Score: float64(score)})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}
	return scored, nil
}

// queryTerms lowercases the query and keeps whitespace-separated terms
// longer than two characters.
func queryTerms(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= minTermLength {
			terms = append(terms, f)
		}
	}
	return terms
}
