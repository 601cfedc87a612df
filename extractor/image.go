package extractor

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const ocrTimeout = 60 * time.Second

// imageExtractor performs OCR via the tesseract CLI. It first attempts the
// configured language set, then retries with English only. OCR failures are
// non-fatal and degrade to an inline marker so a bad scan never sinks a batch.
type imageExtractor struct {
	binary    string
	languages []string
}

func newImageExtractor(binary string, languages []string) *imageExtractor {
	if binary == "" {
		binary = "tesseract"
	}
	if len(languages) == 0 {
		languages = []string{"chi_sim", "eng"}
	}
	return &imageExtractor{binary: binary, languages: languages}
}

func (i *imageExtractor) Extract(ctx context.Context, location string, _ []byte) (string, error) {
	text, err := i.recognize(ctx, location, strings.Join(i.languages, "+"))
	if err != nil {
		text, err = i.recognize(ctx, location, "eng")
	}
	if err != nil {
		return fmt.Sprintf("[OCR failed: %v]", err), nil
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: OCR produced no text", ErrNoText)
	}
	return text, nil
}

func (i *imageExtractor) recognize(ctx context.Context, location, languages string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, ocrTimeout)
	defer cancel()
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, i.binary, location, "stdout", "-l", languages)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s", firstLine(msg))
		}
		return "", err
	}
	return stdout.String(), nil
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
