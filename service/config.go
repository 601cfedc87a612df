package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doclens/doclens/analyzer/llm"
	"github.com/doclens/doclens/extractor"
	"github.com/doclens/doclens/matching/option"
)

// Config defines run settings loadable from YAML; flags override it.
type Config struct {
	MaxChars  int `yaml:"maxChars"`
	BatchSize int `yaml:"batchSize"`
	MaxDocs   int `yaml:"maxDocs"`
	Threshold int `yaml:"threshold"`

	Include     []string `yaml:"include"`
	Exclude     []string `yaml:"exclude"`
	MaxFileSize int      `yaml:"maxFileSize"`

	OCR           OCRConfig  `yaml:"ocr"`
	DocConverters []string   `yaml:"docConverters"`
	Analyzer      llm.Config `yaml:"analyzer"`
}

// OCRConfig defines the OCR engine settings.
type OCRConfig struct {
	Binary    string   `yaml:"binary"`
	Languages []string `yaml:"languages"`
}

// LoadConfig reads a YAML config, expanding a leading ~ in the path.
func LoadConfig(path string) (*Config, error) {
	path, err := expandUserPath(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ExtractorOptions maps config onto extractor options.
func (c *Config) ExtractorOptions() []extractor.Option {
	var opts []extractor.Option
	if c.MaxChars > 0 {
		opts = append(opts, extractor.WithMaxChars(c.MaxChars))
	}
	if c.OCR.Binary != "" || len(c.OCR.Languages) > 0 {
		opts = append(opts, extractor.WithOCR(c.OCR.Binary, c.OCR.Languages...))
	}
	if len(c.DocConverters) > 0 {
		opts = append(opts, extractor.WithDocConverters(c.DocConverters...))
	}
	return opts
}

// MatchingOptions maps config onto discovery eligibility options.
func (c *Config) MatchingOptions() []option.Option {
	var opts []option.Option
	if len(c.Include) > 0 {
		opts = append(opts, option.WithInclusionPatterns(c.Include...))
	}
	if len(c.Exclude) > 0 {
		opts = append(opts, option.WithExclusionPatterns(c.Exclude...))
	}
	if c.MaxFileSize > 0 {
		opts = append(opts, option.WithMaxFileSize(c.MaxFileSize))
	}
	return opts
}

func expandUserPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" || trimmed[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if trimmed == "~" {
		return home, nil
	}
	if !strings.HasPrefix(trimmed, "~/") {
		return "", fmt.Errorf("config: unsupported ~user path: %s", path)
	}
	return filepath.Join(home, trimmed[2:]), nil
}
