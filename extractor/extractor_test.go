package extractor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestService_Extract_UnsupportedFormat(t *testing.T) {
	svc := New()
	_, err := svc.Extract(context.Background(), "archive.tar.gz", []byte("payload"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	var fileErr *FileError
	if !errors.As(err, &fileErr) {
		t.Fatalf("expected *FileError, got %T", err)
	}
	if !strings.Contains(fileErr.Error(), "archive.tar.gz") {
		t.Fatalf("expected file name in error, got %q", fileErr.Error())
	}
}

func TestService_Extract_Truncation(t *testing.T) {
	svc := New(WithMaxChars(100))
	text, err := svc.Extract(context.Background(), "big.txt", []byte(strings.Repeat("a", 500)))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.HasSuffix(text, TruncationMarker) {
		t.Fatalf("expected truncation marker suffix, got %q", text[len(text)-40:])
	}
	if got, max := utf8.RuneCountInString(text), 100+utf8.RuneCountInString(TruncationMarker); got > max {
		t.Fatalf("expected at most %d chars, got %d", max, got)
	}
}

func TestService_Extract_NoTruncationUnderCeiling(t *testing.T) {
	svc := New(WithMaxChars(100))
	text, err := svc.Extract(context.Background(), "small.txt", []byte("short content"))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if text != "short content" {
		t.Fatalf("expected verbatim content, got %q", text)
	}
}

func TestService_Supported(t *testing.T) {
	svc := New()
	tests := []struct {
		location  string
		supported bool
	}{
		{"report.PDF", true},
		{"notes.txt", true},
		{"readme.md", true},
		{"ledger.xlsx", true},
		{"ledger.xls", true},
		{"memo.doc", true},
		{"memo.docx", true},
		{"scan.jpeg", true},
		{"scan.png", true},
		{"binary.exe", false},
		{"no-extension", false},
	}
	for _, tc := range tests {
		if got := svc.Supported(tc.location); got != tc.supported {
			t.Fatalf("Supported(%q) = %v, want %v", tc.location, got, tc.supported)
		}
	}
}

func TestService_Extensions(t *testing.T) {
	got := New().Extensions()
	want := []string{".doc", ".docx", ".jpeg", ".jpg", ".md", ".pdf", ".png", ".txt", ".xls", ".xlsx"}
	if len(got) != len(want) {
		t.Fatalf("Extensions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Extensions()[%d] = %q, want %q (sorted)", i, got[i], want[i])
		}
	}
}

func TestService_CustomExtractor(t *testing.T) {
	svc := New(WithExtractor(".csv", extractorFunc(func(context.Context, string, []byte) (string, error) {
		return "custom", nil
	})))
	text, err := svc.Extract(context.Background(), "data.csv", nil)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if text != "custom" {
		t.Fatalf("expected custom extractor output, got %q", text)
	}
}

type extractorFunc func(ctx context.Context, location string, data []byte) (string, error)

func (f extractorFunc) Extract(ctx context.Context, location string, data []byte) (string, error) {
	return f(ctx, location, data)
}
