package extractor

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// TruncationMarker is appended whenever extracted text exceeds the ceiling.
const TruncationMarker = "\n\n[Content truncated...]"

// DefaultMaxChars bounds the extracted text per document.
const DefaultMaxChars = 100000

// Extractor defines a format specific text extraction strategy.
type Extractor interface {
	// Extract returns plain text for the document. Byte oriented formats use
	// data; extractors that shell out to external tools operate on location,
	// which must be a local file path.
	Extract(ctx context.Context, location string, data []byte) (string, error)
}

// Service dispatches extraction by file extension and normalizes the outcome.
type Service struct {
	registry map[string]Extractor
	maxChars int
}

// Option configures the Service.
type Option func(*Service)

// WithMaxChars sets the extracted text ceiling in characters.
func WithMaxChars(maxChars int) Option {
	return func(s *Service) {
		if maxChars > 0 {
			s.maxChars = maxChars
		}
	}
}

// WithExtractor registers a custom extractor for an extension (e.g. ".pdf").
func WithExtractor(ext string, extractor Extractor) Option {
	return func(s *Service) {
		s.registry[strings.ToLower(ext)] = extractor
	}
}

// WithOCR overrides the OCR binary and language preference order.
func WithOCR(binary string, languages ...string) Option {
	return func(s *Service) {
		image := newImageExtractor(binary, languages)
		for _, ext := range []string{".jpg", ".jpeg", ".png"} {
			s.registry[ext] = image
		}
	}
}

// WithDocConverters overrides the legacy Word conversion tool chain.
func WithDocConverters(tools ...string) Option {
	return func(s *Service) {
		s.registry[".doc"] = newDocExtractor(tools)
	}
}

// New creates a Service with built-in extractors registered.
func New(opts ...Option) *Service {
	s := &Service{
		registry: map[string]Extractor{},
		maxChars: DefaultMaxChars,
	}
	text := &textExtractor{}
	s.registry[".txt"] = text
	s.registry[".md"] = text
	s.registry[".pdf"] = &pdfExtractor{}
	s.registry[".docx"] = &docxExtractor{}
	s.registry[".xlsx"] = &excelExtractor{}
	s.registry[".xls"] = &xlsExtractor{}
	s.registry[".doc"] = newDocExtractor(nil)
	image := newImageExtractor("", nil)
	s.registry[".jpg"] = image
	s.registry[".jpeg"] = image
	s.registry[".png"] = image
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Supported reports whether the location's extension has a registered extractor.
func (s *Service) Supported(location string) bool {
	_, ok := s.registry[strings.ToLower(filepath.Ext(location))]
	return ok
}

// Extensions returns the registered extensions in sorted order.
func (s *Service) Extensions() []string {
	out := make([]string, 0, len(s.registry))
	for ext := range s.registry {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Extract dispatches by extension, truncates oversized output and wraps
// failures with the originating file. A failure never carries partial text.
func (s *Service) Extract(ctx context.Context, location string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(location))
	extractor, ok := s.registry[ext]
	if !ok {
		return "", &FileError{Path: location, Err: fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)}
	}
	text, err := extractor.Extract(ctx, location, data)
	if err != nil {
		return "", &FileError{Path: location, Err: err}
	}
	return truncate(text, s.maxChars), nil
}

func truncate(text string, maxChars int) string {
	if maxChars <= 0 || utf8.RuneCountInString(text) <= maxChars {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxChars]) + TruncationMarker
}
