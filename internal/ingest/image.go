package ingest

import (
	"fmt"
	"strings"

	"agentic-rag/internal/retrieval"
)

// OCREngine recognizes text in an image file. It is a seam so extractor
// tests can run without a tesseract installation.
type OCREngine interface {
	Recognize(path string) (string, error)
}

// ImageExtractor runs OCR over an image and emits one chunk per non-blank
// recognized line, with sequential line numbers and no page.
type ImageExtractor struct {
	engine OCREngine
}

// NewImageExtractor creates an image extractor backed by the given OCR
// engine. Pass nil to use the tesseract engine.
func NewImageExtractor(engine OCREngine) *ImageExtractor {
	if engine == nil {
		engine = TesseractEngine{}
	}
	return &ImageExtractor{engine: engine}
}

// Extract recognizes the image text and produces per-line chunks.
func (e *ImageExtractor) Extract(path, filename string) ([]Chunk, error) {
	text, err := e.engine.Recognize(path)
	if err != nil {
		return nil, fmt.Errorf("failed to OCR %s: %w", filename, err)
	}

	var chunks []Chunk
	lineNumber := 0
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lineNumber++
		chunks = append(chunks, Chunk{
			Text:     trimmed,
			Source:   filename,
			Line:     lineNumber,
			FileType: retrieval.FileTypeImage,
		})
	}
	return chunks, nil
}
