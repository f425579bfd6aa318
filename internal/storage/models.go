package storage

// ChunkRecord is the persisted form of a document chunk.
// IDs are dense integer strings assigned at ingestion time and shared with
// the vector store's point ids; records are append-only and never mutated.
type ChunkRecord struct {
	Collection string // Collection/namespace the chunk belongs to
	ID         string // Dense integer string, unique within the collection
	Text       string // Normalized chunk content
	Source     string // Originating filename
	Page       int    // 1-based page number; 0 when the format has no pages
	Line       int    // 1-based line number used for citation
	FileType   string // One of "pdf", "latex", "image", "text"
}
