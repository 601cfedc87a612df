package analyzer

import (
	"errors"
	"testing"
)

func TestParseResponse(t *testing.T) {
	raw := `{"analyses":[{"file":"a.txt","relevance":85,"summary":"covers the topic","excerpts":["first","second"]}]}`
	analyses, err := ParseResponse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(analyses) != 1 {
		t.Fatalf("expected 1 analysis, got %d", len(analyses))
	}
	if analyses[0].File != "a.txt" || analyses[0].Relevance != 85 {
		t.Fatalf("unexpected analysis: %+v", analyses[0])
	}
	if len(analyses[0].Excerpts) != 2 {
		t.Fatalf("expected 2 excerpts, got %d", len(analyses[0].Excerpts))
	}
}

func TestParseResponse_CodeFence(t *testing.T) {
	raw := "Here are the results:\n```json\n{\"analyses\":[{\"file\":\"b.pdf\",\"relevance\":40,\"summary\":\"s\"}]}\n```\n"
	analyses, err := ParseResponse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(analyses) != 1 || analyses[0].File != "b.pdf" {
		t.Fatalf("unexpected analyses: %+v", analyses)
	}
}

func TestParseResponse_ClampsRelevance(t *testing.T) {
	raw := `{"analyses":[{"file":"a","relevance":150},{"file":"b","relevance":-10}]}`
	analyses, err := ParseResponse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if analyses[0].Relevance != 100 || analyses[1].Relevance != 0 {
		t.Fatalf("expected clamped scores, got %d and %d", analyses[0].Relevance, analyses[1].Relevance)
	}
}

func TestParseResponse_Malformed(t *testing.T) {
	for _, raw := range []string{"", "no json here", "{broken"} {
		if _, err := ParseResponse(raw); !errors.Is(err, ErrMalformedResponse) {
			t.Fatalf("expected ErrMalformedResponse for %q, got %v", raw, err)
		}
	}
}
