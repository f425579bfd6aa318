package ingest

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"agentic-rag/internal/retrieval"
)

// PageReader extracts per-page text from a PDF file. It is a seam so
// extractor tests can run without real PDF fixtures.
type PageReader interface {
	ReadPages(path string) ([]string, error)
}

// PDFExtractor parses a PDF per page and emits one chunk per non-blank
// line with (page, line-within-page) provenance.
type PDFExtractor struct {
	reader PageReader
}

// NewPDFExtractor creates a PDF extractor backed by the given page reader.
// Pass nil to use the default parser.
func NewPDFExtractor(reader PageReader) *PDFExtractor {
	if reader == nil {
		reader = pdfPageReader{}
	}
	return &PDFExtractor{reader: reader}
}

// Extract reads the PDF and produces per-line chunks. A page with no
// extractable text contributes zero chunks without error. Line numbers
// count the non-blank lines of each page, starting at 1.
func (e *PDFExtractor) Extract(path, filename string) ([]Chunk, error) {
	pages, err := e.reader.ReadPages(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	var chunks []Chunk
	for pageIndex, pageText := range pages {
		lineNumber := 0
		for _, line := range strings.Split(pageText, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			lineNumber++
			chunks = append(chunks, Chunk{
				Text:     trimmed,
				Source:   filename,
				Page:     pageIndex + 1,
				Line:     lineNumber,
				FileType: retrieval.FileTypePDF,
			})
		}
	}
	return chunks, nil
}

// pdfPageReader reads page text with the ledongthuc/pdf parser.
type pdfPageReader struct{}

// ReadPages returns the plain text of each page in order. Pages whose
// text cannot be extracted yield an empty string rather than failing the
// whole file. The file handle is released on all paths.
func (pdfPageReader) ReadPages(path string) ([]string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	total := reader.NumPage()
	pages := make([]string, 0, total)
	for pageNum := 1; pageNum <= total; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}
