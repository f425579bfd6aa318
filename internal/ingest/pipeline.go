package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"agentic-rag/internal/contextutil"
	"agentic-rag/internal/retrieval"
	"agentic-rag/internal/storage"
	"agentic-rag/internal/vectorstore"
)

// batchSize is the number of chunks embedded and inserted per batch.
const batchSize = 100

// Pipeline turns a directory of heterogeneous source files into embedded,
// indexed document chunks. It runs offline as a single writer; readers of
// the store may run concurrently with it.
type Pipeline struct {
	embedder    retrieval.Embedder
	vectorStore vectorstore.VectorStore
	chunkRepo   storage.ChunkStore

	pdf   Extractor
	latex Extractor
	image Extractor
	text  Extractor
}

// NewPipeline creates an ingestion pipeline with the default extractors.
func NewPipeline(embedder retrieval.Embedder, vectorStore vectorstore.VectorStore, chunkRepo storage.ChunkStore) *Pipeline {
	return &Pipeline{
		embedder:    embedder,
		vectorStore: vectorStore,
		chunkRepo:   chunkRepo,
		pdf:         NewPDFExtractor(nil),
		latex:       LaTeXExtractor{},
		image:       NewImageExtractor(nil),
		text:        TextExtractor{},
	}
}

// NewPipelineWithExtractors creates a pipeline with explicit extractors,
// used by tests to avoid the real PDF parser and OCR engine.
func NewPipelineWithExtractors(embedder retrieval.Embedder, vectorStore vectorstore.VectorStore, chunkRepo storage.ChunkStore, pdf, latex, image, text Extractor) *Pipeline {
	return &Pipeline{
		embedder:    embedder,
		vectorStore: vectorStore,
		chunkRepo:   chunkRepo,
		pdf:         pdf,
		latex:       latex,
		image:       image,
		text:        text,
	}
}

// Ingest extracts chunks from every regular file in dir, embeds them, and
// loads them into the store under the given collection. It returns the
// number of chunks added.
//
// Per-file extraction failures are logged and contribute zero chunks; a
// failed embed or store write aborts the run with the error. New chunk ids
// continue from the collection's current point count so re-ingestion never
// collides with existing entries.
func (p *Pipeline) Ingest(ctx context.Context, dir, collection string) (int, error) {
	logger := contextutil.LoggerFromContext(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read documents directory: %w", err)
	}

	var chunks []Chunk
	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}

		extracted, err := p.extractorFor(name).Extract(filepath.Join(dir, name), name)
		if err != nil {
			logger.ErrorContext(ctx, "failed to extract file", "file", name, "error", err)
			continue
		}

		logger.InfoContext(ctx, "extracted file", "file", name, "chunks", len(extracted))
		chunks = append(chunks, extracted...)
	}

	if len(chunks) == 0 {
		logger.InfoContext(ctx, "no chunks extracted", "dir", dir)
		return 0, nil
	}

	count, err := p.vectorStore.Count(ctx, collection)
	if err != nil {
		return 0, fmt.Errorf("failed to get collection count: %w", err)
	}

	totalBatches := (len(chunks) + batchSize - 1) / batchSize
	logger.InfoContext(ctx, "loading chunks", "total", len(chunks), "batches", totalBatches, "first_id", count)

	// Batches run strictly sequentially so id assignment stays monotonic.
	for start := 0; start < len(chunks); start += batchSize {
		end := start + batchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		texts := make([]string, len(batch))
		for i, chunk := range batch {
			texts[i] = chunk.Text
		}

		embeddings, err := p.embedder.EmbedTexts(ctx, texts)
		if err != nil {
			return 0, fmt.Errorf("failed to embed batch: %w", err)
		}
		if len(embeddings) != len(batch) {
			return 0, fmt.Errorf("embedding count mismatch: expected %d, got %d", len(batch), len(embeddings))
		}

		points := make([]vectorstore.Point, len(batch))
		records := make([]*storage.ChunkRecord, len(batch))
		for i, chunk := range batch {
			id := strconv.Itoa(count + start + i)
			points[i] = vectorstore.Point{
				ID:  id,
				Vec: embeddings[i],
				Meta: map[string]any{
					"source":    chunk.Source,
					"page":      chunk.Page,
					"line":      chunk.Line,
					"file_type": chunk.FileType,
				},
			}
			records[i] = &storage.ChunkRecord{
				Collection: collection,
				ID:         id,
				Text:       chunk.Text,
				Source:     chunk.Source,
				Page:       chunk.Page,
				Line:       chunk.Line,
				FileType:   chunk.FileType,
			}
		}

		if err := p.vectorStore.Upsert(ctx, collection, points); err != nil {
			return 0, fmt.Errorf("failed to upsert batch: %w", err)
		}
		for _, record := range records {
			if err := p.chunkRepo.Insert(ctx, record); err != nil {
				return 0, fmt.Errorf("failed to insert chunk %s: %w", record.ID, err)
			}
		}

		logger.InfoContext(ctx, "processed batch", "batch", start/batchSize+1, "total_batches", totalBatches)
	}

	return len(chunks), nil
}

// extractorFor routes a filename to an extractor by extension. Unknown
// extensions fall back to the text extractor.
func (p *Pipeline) extractorFor(name string) Extractor {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return p.pdf
	case ".tex", ".latex":
		return p.latex
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp":
		return p.image
	default:
		return p.text
	}
}
