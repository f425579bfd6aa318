package retrieval

import (
	"fmt"
	"strings"
)

// FormatContext renders retrieved chunks as a citation-bearing context
// block for the answer prompt. Each chunk is wrapped with its source and
// page/line provenance so the model can cite it.
func FormatContext(results []Result) string {
	blocks := make([]string, 0, len(results))
	for _, r := range results {
		page := "N/A"
		if r.Chunk.Page > 0 {
			page = fmt.Sprintf("%d", r.Chunk.Page)
		}
		blocks = append(blocks, fmt.Sprintf(
			"<context>\n%s\n\n<meta>\nsource: %s\npage: %s\nline: %d\n</meta>\n</context>",
			r.Chunk.Text, r.Chunk.Source, page, r.Chunk.Line,
		))
	}
	return strings.Join(blocks, "\n\n")
}
