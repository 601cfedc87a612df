package service

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `maxChars: 50000
batchSize: 10
maxDocs: 100
threshold: 40
exclude:
  - drafts/
maxFileSize: 10485760
ocr:
  binary: /usr/local/bin/tesseract
  languages: [chi_sim, eng]
docConverters: [antiword]
analyzer:
  baseURL: http://localhost:11434/v1
  model: qwen2.5:3b
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.MaxChars != 50000 || cfg.BatchSize != 10 || cfg.MaxDocs != 100 || cfg.Threshold != 40 {
		t.Fatalf("unexpected tuning values: %+v", cfg)
	}
	if cfg.OCR.Binary != "/usr/local/bin/tesseract" || len(cfg.OCR.Languages) != 2 {
		t.Fatalf("unexpected OCR config: %+v", cfg.OCR)
	}
	if cfg.Analyzer.Model != "qwen2.5:3b" {
		t.Fatalf("unexpected analyzer config: %+v", cfg.Analyzer)
	}
	if got := len(cfg.ExtractorOptions()); got != 3 {
		t.Fatalf("expected 3 extractor options, got %d", got)
	}
	if got := len(cfg.MatchingOptions()); got != 2 {
		t.Fatalf("expected 2 matching options, got %d", got)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing config")
	}
}
