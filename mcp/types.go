package mcp

import (
	"github.com/doclens/doclens/document"
)

type SearchInput struct {
	Folder    string `json:"folder"`
	Query     string `json:"query"`
	BatchSize int    `json:"batchSize,omitempty"`
	MaxDocs   int    `json:"maxDocs,omitempty"`
	Threshold int    `json:"threshold,omitempty"`
	// Report requests the rendered Markdown alongside structured results.
	Report bool `json:"report,omitempty"`
}

type SearchOutput struct {
	Results []document.Result `json:"results"`
	Stats   document.Stats    `json:"stats"`
	// Prompts carries analysis prompts for the host to run when no local
	// analyzer is configured.
	Prompts []string `json:"prompts,omitempty"`
	Report  string   `json:"report,omitempty"`
}

type ExtractInput struct {
	Location string `json:"location"`
}

type ExtractOutput struct {
	Location string `json:"location"`
	Content  string `json:"content"`
	Chars    int    `json:"chars"`
}
