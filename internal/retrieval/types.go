package retrieval

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_searcher.go -package=mocks agentic-rag/internal/retrieval Searcher

import "context"

// File types assigned by the ingestion extractors.
const (
	FileTypePDF   = "pdf"
	FileTypeLaTeX = "latex"
	FileTypeImage = "image"
	FileTypeText  = "text"
)

// DocumentChunk is the atomic retrievable unit. Every chunk traces to
// exactly one (source, page, line) provenance triple so answers can cite
// it verbatim. Chunks are immutable once ingested.
type DocumentChunk struct {
	ID       string `json:"id"`
	Text     string `json:"content"`
	Source   string `json:"source"`
	Page     int    `json:"page,omitempty"` // 1-based; 0 when the format has no pages
	Line     int    `json:"line"`           // 1-based line number within the page/file
	FileType string `json:"file_type"`
}

// Result is a chunk plus the relevance signal used for ranking.
// The score is a lexical occurrence count or a vector similarity score
// depending on the searcher; it is not persisted.
type Result struct {
	Chunk DocumentChunk
	Score float64
}

// Searcher answers top-K relevance queries over a chunk corpus.
// Implementations return at most topK results ordered most relevant first;
// an empty slice means no match.
type Searcher interface {
	Search(ctx context.Context, query string, topK int) ([]Result, error)
}
