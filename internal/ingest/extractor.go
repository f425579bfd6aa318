package ingest

// Chunk is a unit of extracted text with its provenance, before an id is
// assigned. Source is the originating filename; Page is 0 for formats
// without pages.
type Chunk struct {
	Text     string
	Source   string
	Page     int
	Line     int
	FileType string
}

// Extractor turns a source file into an ordered sequence of chunks.
// Implementations exist per file format (pdf, latex, image, text).
type Extractor interface {
	Extract(path, filename string) ([]Chunk, error)
}
