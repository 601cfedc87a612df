package extractor

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	converterTimeout = 30 * time.Second
	officeTimeout    = 60 * time.Second
)

// docExtractor converts legacy Word documents through an ordered tool chain:
// antiword, catdoc, then a headless office suite conversion. The first tool
// producing non-empty output wins.
type docExtractor struct {
	converters []string
	office     []string
}

func newDocExtractor(converters []string) *docExtractor {
	if len(converters) == 0 {
		converters = []string{"antiword", "catdoc"}
	}
	return &docExtractor{
		converters: converters,
		office:     []string{"libreoffice", "soffice"},
	}
}

func (d *docExtractor) Extract(ctx context.Context, location string, _ []byte) (string, error) {
	for _, tool := range d.converters {
		if text, ok := runConverter(ctx, tool, location); ok {
			return text, nil
		}
	}
	for _, tool := range d.office {
		if text, ok := runOfficeConversion(ctx, tool, location); ok {
			return text, nil
		}
	}
	return "", fmt.Errorf("%w: install antiword, catdoc or LibreOffice, or convert the file to .docx", ErrToolUnavailable)
}

// runConverter invokes a stdout based converter (antiword/catdoc style).
func runConverter(ctx context.Context, tool, location string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, converterTimeout)
	defer cancel()
	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, tool, location)
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return "", false
	}
	text := stdout.String()
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}

// runOfficeConversion converts the document to txt in a temporary directory
// and reads the result back, so the source directory is never mutated.
func runOfficeConversion(ctx context.Context, tool, location string) (string, bool) {
	tmpDir, err := os.MkdirTemp("", "doclens-doc-*")
	if err != nil {
		return "", false
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	ctx, cancel := context.WithTimeout(ctx, officeTimeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, tool, "--headless", "--convert-to", "txt:Text", "--outdir", tmpDir, location)
	if err := cmd.Run(); err != nil {
		return "", false
	}
	base := strings.TrimSuffix(filepath.Base(location), filepath.Ext(location))
	converted, err := os.ReadFile(filepath.Join(tmpDir, base+".txt"))
	if err != nil || strings.TrimSpace(string(converted)) == "" {
		return "", false
	}
	return string(converted), true
}
