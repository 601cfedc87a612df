package document

// Match provenance values reported in results.
const (
	SourcePath    = "path"
	SourceContent = "content"
)

// Document represents a candidate file with its extracted content.
type Document struct {
	// Path is the absolute location of the file.
	Path string `json:"path"`
	// RelPath is the path relative to the search root.
	RelPath string `json:"relPath"`
	// Content holds the extracted text; empty when extraction failed.
	Content string `json:"content,omitempty"`
	// Err records the extraction failure, if any.
	Err error `json:"-"`
}

// PathMatch captures a lexical match of query terms against a file path.
type PathMatch struct {
	Path         string   `json:"path"`
	MatchedTerms []string `json:"matchedTerms"`
	// Relevance is the lexical score in the 0-100 range.
	Relevance int `json:"relevance"`
}

// Analysis is a per-file semantic verdict supplied by an external reasoner.
type Analysis struct {
	// File is the path as echoed back by the reasoner (relative to the root).
	File string `json:"file"`
	// Relevance is the semantic score in the 0-100 range.
	Relevance int      `json:"relevance"`
	Summary   string   `json:"summary"`
	Excerpts  []string `json:"excerpts,omitempty"`
}

// Result is a merged path/content match ready for reporting.
type Result struct {
	Path      string   `json:"path"`
	Relevance int      `json:"relevance"`
	Summary   string   `json:"summary"`
	Excerpts  []string `json:"excerpts,omitempty"`
	// Sources lists match provenance: SourcePath and/or SourceContent.
	Sources      []string `json:"sources"`
	MatchedTerms []string `json:"matchedTerms,omitempty"`
	// Component scores, populated when both sources contributed.
	PathRelevance    int `json:"pathRelevance,omitempty"`
	ContentRelevance int `json:"contentRelevance,omitempty"`
}

// HasSource reports whether the result carries the given provenance tag.
func (r *Result) HasSource(source string) bool {
	for _, candidate := range r.Sources {
		if candidate == source {
			return true
		}
	}
	return false
}

// FileError records a per-file extraction failure for the skipped section.
type FileError struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// Stats accumulates run counters and per-file failures.
type Stats struct {
	TotalFound       int         `json:"totalFound"`
	SuccessfullyRead int         `json:"successfullyRead"`
	Skipped          int         `json:"skipped"`
	Matched          int         `json:"matched"`
	Errors           []FileError `json:"errors,omitempty"`
}
