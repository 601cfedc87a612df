package extractor

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ledongthuc/pdf"
)

func TestPDFExtractor_Corrupt(t *testing.T) {
	e := &pdfExtractor{}
	_, err := e.Extract(context.Background(), "broken.pdf", []byte("%PDF-1.4 garbage with no xref"))
	if !errors.Is(err, ErrCorruptStructure) {
		t.Fatalf("expected ErrCorruptStructure, got %v", err)
	}
}

func TestPDFExtractor_NotAPDF(t *testing.T) {
	e := &pdfExtractor{}
	_, err := e.Extract(context.Background(), "fake.pdf", []byte("just text"))
	if err == nil {
		t.Fatalf("expected error for non-PDF payload")
	}
}

func TestClassifyOpenError(t *testing.T) {
	tests := []struct {
		description string
		err         error
		want        error
	}{
		{"invalid password sentinel", pdf.ErrInvalidPassword, ErrEncrypted},
		{"wrapped invalid password", fmt.Errorf("open: %w", pdf.ErrInvalidPassword), ErrEncrypted},
		{"encryption mentioned in message", errors.New("unsupported encryption filter"), ErrEncrypted},
		{"anything else", errors.New("malformed xref table"), ErrCorruptStructure},
	}
	for _, tc := range tests {
		if got := classifyOpenError(tc.err); !errors.Is(got, tc.want) {
			t.Fatalf("%s: classifyOpenError(%v) = %v, want %v", tc.description, tc.err, got, tc.want)
		}
	}
}
