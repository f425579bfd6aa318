package ingest

import (
	"fmt"
	"os"
	"strings"

	"agentic-rag/internal/retrieval"
)

// TextExtractor handles plain text, markdown, and any unrecognized format.
// It emits one chunk per non-blank line, numbered over the original file.
type TextExtractor struct{}

// Extract reads the file and splits it into per-line chunks.
func (TextExtractor) Extract(path, filename string) ([]Chunk, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	var chunks []Chunk
	for i, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		chunks = append(chunks, Chunk{
			Text:     trimmed,
			Source:   filename,
			Line:     i + 1,
			FileType: retrieval.FileTypeText,
		})
	}
	return chunks, nil
}
