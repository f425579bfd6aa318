package retrieval

import (
	"context"
	"fmt"

	"agentic-rag/internal/contextutil"
	"agentic-rag/internal/storage"
	"agentic-rag/internal/vectorstore"
)

// Embedder turns texts into vectors. Satisfied by llm.EmbeddingsClient.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// VectorSearcher is the vector-index strategy: it embeds the query, asks
// the vector store for nearest neighbors, and joins each neighbor back to
// its stored chunk text.
type VectorSearcher struct {
	embedder   Embedder
	store      vectorstore.VectorStore
	chunks     storage.ChunkStore
	collection string
}

// NewVectorSearcher creates a vector-index backed searcher.
func NewVectorSearcher(embedder Embedder, store vectorstore.VectorStore, chunks storage.ChunkStore, collection string) *VectorSearcher {
	return &VectorSearcher{
		embedder:   embedder,
		store:      store,
		chunks:     chunks,
		collection: collection,
	}
}

// Search embeds the query and maps each returned neighbor to its stored
// chunk plus the similarity score. Neighbors whose chunk record cannot be
// found are skipped with a warning rather than failing the query.
func (s *VectorSearcher) Search(ctx context.Context, query string, topK int) ([]Result, error) {
	logger := contextutil.LoggerFromContext(ctx)

	embeddings, err := s.embedder.EmbedTexts(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("no embedding returned for query")
	}

	neighbors, err := s.store.Search(ctx, s.collection, embeddings[0], topK)
	if err != nil {
		return nil, fmt.Errorf("failed to search vector store: %w", err)
	}

	results := make([]Result, 0, len(neighbors))
	for _, neighbor := range neighbors {
		record, err := s.chunks.GetByID(ctx, s.collection, neighbor.PointID)
		if err != nil {
			logger.WarnContext(ctx, "failed to fetch chunk for point", "point_id", neighbor.PointID, "error", err)
			continue
		}
		results = append(results, Result{
			Chunk: DocumentChunk{
				ID:       record.ID,
				Text:     record.Text,
				Source:   record.Source,
				Page:     record.Page,
				Line:     record.Line,
				FileType: record.FileType,
			},
			Score: float64(neighbor.Score),
		})
	}

	return results, nil
}
