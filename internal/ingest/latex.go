package ingest

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"agentic-rag/internal/retrieval"
)

var (
	latexSectionRe    = regexp.MustCompile(`\\section\{([^}]+)\}`)
	latexSubsectionRe = regexp.MustCompile(`\\subsection\{([^}]+)\}`)
	latexTextbfRe     = regexp.MustCompile(`\\textbf\{([^}]+)\}`)
	latexTextitRe     = regexp.MustCompile(`\\textit\{([^}]+)\}`)
	latexEmphRe       = regexp.MustCompile(`\\emph\{([^}]+)\}`)
	latexCiteRe       = regexp.MustCompile(`\\cite\{[^}]+\}`)
	latexLabelRe      = regexp.MustCompile(`\\label\{[^}]+\}`)
	latexRefRe        = regexp.MustCompile(`\\ref\{[^}]+\}`)
	latexCommandRe    = regexp.MustCompile(`\\[a-zA-Z]+`)
	latexBraceRe      = regexp.MustCompile(`[{}]`)
)

// LaTeXExtractor reads a LaTeX source file as text, strips comments,
// preamble boilerplate, and common markup commands, and emits one chunk
// per remaining non-empty line. Line numbers refer to the original file,
// not the cleaned output.
type LaTeXExtractor struct{}

// Extract reads the file and produces cleaned per-line chunks.
func (LaTeXExtractor) Extract(path, filename string) ([]Chunk, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	var chunks []Chunk
	for i, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" ||
			strings.HasPrefix(trimmed, "%") ||
			strings.HasPrefix(trimmed, `\documentclass`) ||
			strings.HasPrefix(trimmed, `\usepackage`) ||
			trimmed == `\begin{document}` ||
			trimmed == `\end{document}` {
			continue
		}

		cleaned := cleanLaTeXLine(trimmed)
		if cleaned == "" {
			continue
		}

		chunks = append(chunks, Chunk{
			Text:     cleaned,
			Source:   filename,
			Line:     i + 1,
			FileType: retrieval.FileTypeLaTeX,
		})
	}
	return chunks, nil
}

// cleanLaTeXLine strips markup commands while keeping their text content.
// Replacements are positional: removed commands leave the surrounding
// whitespace untouched, so no whitespace collapsing happens here.
func cleanLaTeXLine(line string) string {
	cleaned := latexSectionRe.ReplaceAllString(line, "$1")
	cleaned = latexSubsectionRe.ReplaceAllString(cleaned, "$1")
	cleaned = latexTextbfRe.ReplaceAllString(cleaned, "$1")
	cleaned = latexTextitRe.ReplaceAllString(cleaned, "$1")
	cleaned = latexEmphRe.ReplaceAllString(cleaned, "$1")
	cleaned = latexCiteRe.ReplaceAllString(cleaned, "")
	cleaned = latexLabelRe.ReplaceAllString(cleaned, "")
	cleaned = latexRefRe.ReplaceAllString(cleaned, "reference")
	cleaned = latexCommandRe.ReplaceAllString(cleaned, "")
	cleaned = latexBraceRe.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}
