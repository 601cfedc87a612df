package service

import (
	"github.com/doclens/doclens/document"
)

// Defaults for search tuning knobs.
const (
	DefaultBatchSize = 5
	DefaultMaxDocs   = 50

	// RelevanceThreshold is the minimum combined score a result needs to
	// appear in the report.
	RelevanceThreshold = 30
)

// SearchRequest defines inputs for a search run.
type SearchRequest struct {
	// Folder is the root to scan; must be an existing directory.
	Folder string
	// Query holds the search terms.
	Query string
	// BatchSize is the number of documents per analysis batch.
	BatchSize int
	// MaxDocs caps how many discovered files are processed.
	MaxDocs int
	// Threshold overrides RelevanceThreshold when > 0.
	Threshold int
	Logf      func(format string, args ...any)
	Progress  func(current, total int, path string)
}

// SearchResponse carries ranked results and run statistics.
type SearchResponse struct {
	Results []document.Result `json:"results"`
	Stats   document.Stats    `json:"stats"`
	// Prompts holds the serialized batch prompts when no analyzer is
	// configured, so a host agent can run the semantic stage itself.
	Prompts []string `json:"prompts,omitempty"`
}

// ExtractRequest defines inputs for single-file extraction.
type ExtractRequest struct {
	// Location is the file to extract.
	Location string
}

// ExtractResponse carries extracted text for a single file.
type ExtractResponse struct {
	Location string `json:"location"`
	Content  string `json:"content"`
	// Chars is the extracted length in characters.
	Chars int `json:"chars"`
}
