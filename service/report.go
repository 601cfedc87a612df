package service

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/doclens/doclens/document"
)

// BuildReport renders the search outcome as a Markdown document.
func BuildReport(query, folder string, response *SearchResponse) string {
	stats := response.Stats
	var b strings.Builder
	b.WriteString("# Document Search Results\n\n")
	fmt.Fprintf(&b, "**Query:** `%s`\n", query)
	fmt.Fprintf(&b, "**Folder:** `%s`\n", folder)
	fmt.Fprintf(&b, "**Scanned:** %d documents | **Matched:** %d documents | **Skipped:** %d\n",
		stats.TotalFound, stats.Matched, stats.Skipped)
	fmt.Fprintf(&b, "**Generated:** %s UTC\n", time.Now().UTC().Format("2006-01-02 15:04:05"))
	b.WriteString("\n---\n\n")

	if len(response.Results) > 0 {
		b.WriteString("## Matched Documents\n\n")
		for i, result := range response.Results {
			writeResult(&b, i+1, result)
		}
	}

	b.WriteString("## Statistics\n\n")
	b.WriteString("| Metric | Count |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| Total files scanned | %d |\n", stats.TotalFound)
	fmt.Fprintf(&b, "| Successfully read | %d |\n", stats.SuccessfullyRead)
	fmt.Fprintf(&b, "| Relevant matches | %d |\n", stats.Matched)
	fmt.Fprintf(&b, "| Files skipped (errors) | %d |\n", stats.Skipped)
	b.WriteString("\n")

	if len(stats.Errors) > 0 {
		b.WriteString("## Skipped Files\n\n")
		for _, fileErr := range stats.Errors {
			fmt.Fprintf(&b, "- `%s` - %s\n", fileErr.File, fileErr.Error)
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n*Generated by doclens*\n")
	return b.String()
}

func writeResult(b *strings.Builder, rank int, result document.Result) {
	fmt.Fprintf(b, "### %d. %s\n", rank, filepath.Base(result.Path))
	if filepath.Base(result.Path) != result.Path {
		fmt.Fprintf(b, "**File:** `%s`\n", result.Path)
	}
	fmt.Fprintf(b, "**Relevance:** %d/100\n", result.Relevance)
	if result.HasSource(document.SourcePath) {
		fmt.Fprintf(b, "**Match Sources:** %s\n", strings.Join(result.Sources, ", "))
		if len(result.MatchedTerms) > 0 {
			fmt.Fprintf(b, "**Matched Terms:** %s\n", strings.Join(result.MatchedTerms, ", "))
		}
		if result.HasSource(document.SourceContent) {
			fmt.Fprintf(b, "**Score Breakdown:** path %d + content %d\n", result.PathRelevance, result.ContentRelevance)
		}
	}
	fmt.Fprintf(b, "**Summary:** %s\n", result.Summary)
	if len(result.Excerpts) > 0 {
		b.WriteString("\n**Relevant Excerpts:**\n")
		for _, excerpt := range result.Excerpts {
			fmt.Fprintf(b, "> %s\n", excerpt)
		}
	}
	b.WriteString("\n---\n\n")
}
