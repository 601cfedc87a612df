package extractor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfExtractor extracts text page by page, tolerating per-page failures.
type pdfExtractor struct{}

func (p *pdfExtractor) Extract(_ context.Context, _ string, data []byte) (text string, err error) {
	// The underlying parser panics on malformed cross reference tables.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrCorruptStructure, r)
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", classifyOpenError(err)
	}
	var parts []string
	for i := 1; i <= reader.NumPage(); i++ {
		pageText, pageErr := extractPage(reader, i)
		if pageErr != nil {
			parts = append(parts, fmt.Sprintf("[page %d error: %v]", i, pageErr))
			continue
		}
		if strings.TrimSpace(pageText) != "" {
			parts = append(parts, pageText)
		}
	}
	text = strings.Join(parts, "\n\n")
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w (may be image-only PDF)", ErrNoText)
	}
	return text, nil
}

// classifyOpenError maps reader construction failures: password protection
// becomes ErrEncrypted, anything else ErrCorruptStructure.
func classifyOpenError(err error) error {
	if errors.Is(err, pdf.ErrInvalidPassword) || strings.Contains(strings.ToLower(err.Error()), "encrypt") {
		return ErrEncrypted
	}
	return fmt.Errorf("%w: %v", ErrCorruptStructure, err)
}

func extractPage(reader *pdf.Reader, number int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%v", r)
		}
	}()
	page := reader.Page(number)
	if page.V.IsNull() {
		return "", fmt.Errorf("missing page object")
	}
	return page.GetPlainText(nil)
}
