package service

import (
	"strings"
	"testing"

	"github.com/doclens/doclens/document"
)

func TestBuildReport(t *testing.T) {
	response := &SearchResponse{
		Results: []document.Result{
			{
				Path:             "reports/budget-2026.xlsx",
				Relevance:        85,
				Summary:          "annual budget with quarterly breakdown",
				Excerpts:         []string{"Q3 spend exceeded plan"},
				Sources:          []string{document.SourcePath, document.SourceContent},
				MatchedTerms:     []string{"budget"},
				PathRelevance:    50,
				ContentRelevance: 70,
			},
			{
				Path:         "budget-draft.txt",
				Relevance:    40,
				Summary:      "File or folder name contains: budget",
				Excerpts:     []string{"Path match: budget-draft.txt"},
				Sources:      []string{document.SourcePath},
				MatchedTerms: []string{"budget"},
			},
		},
		Stats: document.Stats{
			TotalFound:       5,
			SuccessfullyRead: 4,
			Skipped:          1,
			Matched:          2,
			Errors:           []document.FileError{{File: "secret.pdf", Error: "encrypted document"}},
		},
	}

	report := BuildReport("budget", "/data/docs", response)

	for _, want := range []string{
		"# Document Search Results",
		"**Query:** `budget`",
		"**Folder:** `/data/docs`",
		"**Scanned:** 5 documents | **Matched:** 2 documents | **Skipped:** 1",
		"### 1. budget-2026.xlsx",
		"**File:** `reports/budget-2026.xlsx`",
		"**Relevance:** 85/100",
		"**Match Sources:** path, content",
		"**Matched Terms:** budget",
		"**Score Breakdown:** path 50 + content 70",
		"> Q3 spend exceeded plan",
		"### 2. budget-draft.txt",
		"| Total files scanned | 5 |",
		"| Successfully read | 4 |",
		"## Skipped Files",
		"- `secret.pdf` - encrypted document",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
	// Path-only result has no breakdown line of its own.
	if strings.Count(report, "**Score Breakdown:**") != 1 {
		t.Fatalf("expected exactly one score breakdown, report:\n%s", report)
	}
}

func TestBuildReport_NoMatches(t *testing.T) {
	report := BuildReport("nothing", "/data/docs", &SearchResponse{})
	if strings.Contains(report, "## Matched Documents") {
		t.Fatalf("expected no matched section for empty results")
	}
	if !strings.Contains(report, "## Statistics") {
		t.Fatalf("expected statistics section")
	}
}
