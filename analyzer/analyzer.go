// Package analyzer defines the boundary to an external semantic reasoner.
// Relevance is never computed locally: this package prepares prompts for the
// reasoner and parses its structured JSON verdicts.
package analyzer

import (
	"context"

	"github.com/doclens/doclens/document"
)

// PreviewChars bounds the per-document content preview embedded in a prompt.
const PreviewChars = 3000

// Input is one document submitted for semantic analysis.
type Input struct {
	// File is the path relative to the search root.
	File string `json:"file"`
	// ContentPreview is the truncated extracted text.
	ContentPreview string `json:"content_preview"`
}

// Analyzer scores a batch of documents against a query. Implementations
// delegate to an external reasoner; none computes relevance itself.
type Analyzer interface {
	Analyze(ctx context.Context, query string, docs []Input) ([]document.Analysis, error)
}

// NewInput builds an Input with the preview ceiling applied.
func NewInput(file, content string) Input {
	runes := []rune(content)
	if len(runes) > PreviewChars {
		runes = runes[:PreviewChars]
	}
	return Input{File: file, ContentPreview: string(runes)}
}
