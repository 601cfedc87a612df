package analyzer

import (
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	docs := []Input{
		NewInput("reports/q3.pdf", "quarterly revenue grew"),
		NewInput("notes/meeting.txt", "action items"),
	}
	prompt := BuildPrompt("revenue growth", docs)

	if !strings.Contains(prompt, "Query: revenue growth") {
		t.Fatalf("expected query line, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, `"file": "reports/q3.pdf"`) {
		t.Fatalf("expected document path in payload, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, `"analyses"`) {
		t.Fatalf("expected response contract in prompt")
	}
	if !strings.Contains(prompt, "OR logic") {
		t.Fatalf("expected OR logic instruction in prompt")
	}
}

func TestNewInput_PreviewCeiling(t *testing.T) {
	in := NewInput("big.txt", strings.Repeat("词", PreviewChars+500))
	if got := len([]rune(in.ContentPreview)); got != PreviewChars {
		t.Fatalf("expected preview of %d chars, got %d", PreviewChars, got)
	}
}
