package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chunk_store.go -package=mocks agentic-rag/internal/storage ChunkStore

import (
	"context"
	"database/sql"
	"fmt"
)

// ChunkStore defines the interface for chunk storage operations.
type ChunkStore interface {
	// Insert inserts a single chunk. The chunk's ID must already be assigned.
	Insert(ctx context.Context, chunk *ChunkRecord) error
	// GetByID gets a chunk by collection and id. Returns ErrNotFound if not found.
	GetByID(ctx context.Context, collection, id string) (*ChunkRecord, error)
	// ListByCollection returns all chunks in a collection in insertion order.
	ListByCollection(ctx context.Context, collection string) ([]ChunkRecord, error)
	// CountByCollection returns the number of chunks stored for a collection.
	CountByCollection(ctx context.Context, collection string) (int, error)
}

// ChunkRepo provides methods for chunk operations.
// It implements the ChunkStore interface.
type ChunkRepo struct {
	db *sql.DB
}

// NewChunkRepo creates a new ChunkRepo.
func NewChunkRepo(db *sql.DB) *ChunkRepo {
	return &ChunkRepo{db: db}
}

// Insert inserts a single chunk.
func (r *ChunkRepo) Insert(ctx context.Context, chunk *ChunkRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO chunks (collection, id, text, source, page, line, file_type) VALUES (?, ?, ?, ?, ?, ?, ?)",
		chunk.Collection, chunk.ID, chunk.Text, chunk.Source, chunk.Page, chunk.Line, chunk.FileType,
	)
	if err != nil {
		return fmt.Errorf("failed to insert chunk: %w", err)
	}
	return nil
}

// GetByID gets a chunk by collection and id. Returns ErrNotFound if not found.
func (r *ChunkRepo) GetByID(ctx context.Context, collection, id string) (*ChunkRecord, error) {
	var chunk ChunkRecord
	err := r.db.QueryRowContext(ctx,
		"SELECT collection, id, text, source, page, line, file_type FROM chunks WHERE collection = ? AND id = ?",
		collection, id,
	).Scan(&chunk.Collection, &chunk.ID, &chunk.Text, &chunk.Source, &chunk.Page, &chunk.Line, &chunk.FileType)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query chunk: %w", err)
	}

	return &chunk, nil
}

// ListByCollection returns all chunks in a collection in insertion order.
// Returns an empty slice if the collection is empty (not an error).
func (r *ChunkRepo) ListByCollection(ctx context.Context, collection string) ([]ChunkRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT collection, id, text, source, page, line, file_type FROM chunks WHERE collection = ? ORDER BY seq",
		collection,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query chunks: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var chunks []ChunkRecord
	for rows.Next() {
		var chunk ChunkRecord
		if err := rows.Scan(&chunk.Collection, &chunk.ID, &chunk.Text, &chunk.Source, &chunk.Page, &chunk.Line, &chunk.FileType); err != nil {
			return nil, fmt.Errorf("failed to scan chunk: %w", err)
		}
		chunks = append(chunks, chunk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return chunks, nil
}

// CountByCollection returns the number of chunks stored for a collection.
func (r *ChunkRepo) CountByCollection(ctx context.Context, collection string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM chunks WHERE collection = ?", collection,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count chunks: %w", err)
	}
	return count, nil
}
