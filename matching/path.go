package matching

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/doclens/doclens/document"
)

// Per-term scores by match location.
const (
	scoreFilename  = 40
	scoreDirectory = 30
	scorePath      = 20
	maxRelevance   = 100
)

// termSplitter separates query terms on whitespace and punctuation,
// including CJK list separators.
var termSplitter = regexp.MustCompile(`[\s,，、;；]+`)

// Terms splits a query into lowercased search terms.
func Terms(query string) []string {
	var terms []string
	for _, term := range termSplitter.Split(query, -1) {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}

// MatchPath scores query terms against a file path. A term matches when it
// appears anywhere in the lowercased path; per-term score depends on where:
// filename 40, ancestor directory name 30, elsewhere in the path 20. Scores
// sum across terms and are capped at 100.
func MatchPath(path, query string) (document.PathMatch, bool) {
	lowerPath := strings.ToLower(filepath.ToSlash(path))
	filename := strings.ToLower(filepath.Base(path))
	dirs := ancestorNames(lowerPath)

	var matched []string
	for _, term := range Terms(query) {
		if strings.Contains(lowerPath, term) {
			matched = append(matched, term)
		}
	}
	if len(matched) == 0 {
		return document.PathMatch{}, false
	}

	relevance := 0
	for _, term := range matched {
		switch {
		case strings.Contains(filename, term):
			relevance += scoreFilename
		case inAnyDirectory(dirs, term):
			relevance += scoreDirectory
		default:
			relevance += scorePath
		}
	}
	if relevance > maxRelevance {
		relevance = maxRelevance
	}
	return document.PathMatch{Path: path, MatchedTerms: matched, Relevance: relevance}, true
}

func ancestorNames(lowerPath string) []string {
	parts := strings.Split(lowerPath, "/")
	if len(parts) <= 1 {
		return nil
	}
	return parts[:len(parts)-1]
}

func inAnyDirectory(dirs []string, term string) bool {
	for _, dir := range dirs {
		if strings.Contains(dir, term) {
			return true
		}
	}
	return false
}
