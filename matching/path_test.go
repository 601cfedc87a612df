package matching

import (
	"reflect"
	"testing"
)

func TestTerms(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "whitespace separated",
			query: "Budget  Forecast",
			want:  []string{"budget", "forecast"},
		},
		{
			name:  "cjk separators",
			query: "预算，报告、方案；总结",
			want:  []string{"预算", "报告", "方案", "总结"},
		},
		{
			name:  "mixed separators",
			query: "api, integration; plan",
			want:  []string{"api", "integration", "plan"},
		},
		{
			name:  "empty query",
			query: "   ",
			want:  nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Terms(tc.query); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Terms(%q) = %v, want %v", tc.query, got, tc.want)
			}
		})
	}
}

func TestMatchPath(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		query     string
		match     bool
		relevance int
		terms     []string
	}{
		{
			name:      "term only in filename scores 40",
			path:      "/data/archive/budget-2026.xlsx",
			query:     "budget",
			match:     true,
			relevance: 40,
			terms:     []string{"budget"},
		},
		{
			name:      "term only in parent directory scores 30",
			path:      "/data/budget/q3-summary.xlsx",
			query:     "budget",
			match:     true,
			relevance: 30,
			terms:     []string{"budget"},
		},
		{
			name:      "two filename terms sum to 80",
			path:      "/docs/budget-forecast.pdf",
			query:     "budget forecast",
			match:     true,
			relevance: 80,
			terms:     []string{"budget", "forecast"},
		},
		{
			name:      "three filename terms capped at 100",
			path:      "/docs/annual-budget-forecast.pdf",
			query:     "annual budget forecast",
			match:     true,
			relevance: 100,
			terms:     []string{"annual", "budget", "forecast"},
		},
		{
			name:  "no term in path",
			path:  "/docs/meeting-notes.txt",
			query: "budget",
			match: false,
		},
		{
			name:      "cjk term in filename",
			path:      "/文档/预算报告.docx",
			query:     "预算",
			match:     true,
			relevance: 40,
			terms:     []string{"预算"},
		},
		{
			name:      "case insensitive",
			path:      "/docs/BUDGET.txt",
			query:     "Budget",
			match:     true,
			relevance: 40,
			terms:     []string{"budget"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := MatchPath(tc.path, tc.query)
			if ok != tc.match {
				t.Fatalf("MatchPath(%q, %q) matched=%v, want %v", tc.path, tc.query, ok, tc.match)
			}
			if !ok {
				return
			}
			if got.Relevance != tc.relevance {
				t.Fatalf("relevance = %d, want %d", got.Relevance, tc.relevance)
			}
			if !reflect.DeepEqual(got.MatchedTerms, tc.terms) {
				t.Fatalf("matched terms = %v, want %v", got.MatchedTerms, tc.terms)
			}
		})
	}
}
