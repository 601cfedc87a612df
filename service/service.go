package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/viant/afs"

	"github.com/doclens/doclens/analyzer"
	"github.com/doclens/doclens/extractor"
	"github.com/doclens/doclens/matching"
)

// Option configures the Service.
type Option func(*Service)

// WithExtractor sets the extraction service.
func WithExtractor(ext *extractor.Service) Option {
	return func(s *Service) { s.extractor = ext }
}

// WithAnalyzer sets the external semantic reasoner. When absent, the
// semantic stage is skipped and batch prompts are surfaced instead.
func WithAnalyzer(a analyzer.Analyzer) Option {
	return func(s *Service) { s.analyzer = a }
}

// WithMatcher sets the discovery eligibility matcher.
func WithMatcher(m *matching.Manager) Option {
	return func(s *Service) { s.matcher = m }
}

// WithFS sets the file storage service.
func WithFS(fs afs.Service) Option {
	return func(s *Service) { s.fs = fs }
}

// Service exposes reusable operations for search and extraction.
type Service struct {
	fs        afs.Service
	extractor *extractor.Service
	analyzer  analyzer.Analyzer
	matcher   *matching.Manager
}

// New creates a Service.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.extractor == nil {
		s.extractor = extractor.New()
	}
	if s.matcher == nil {
		s.matcher = matching.New()
	}
	return s
}

// Extract reads a single document and returns its text.
func (s *Service) Extract(ctx context.Context, req ExtractRequest) (*ExtractResponse, error) {
	if req.Location == "" {
		return nil, fmt.Errorf("location is required")
	}
	data, err := s.fs.DownloadWithURL(ctx, req.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", req.Location, err)
	}
	content, err := s.extractor.Extract(ctx, req.Location, data)
	if err != nil {
		return nil, err
	}
	return &ExtractResponse{
		Location: req.Location,
		Content:  content,
		Chars:    utf8.RuneCountInString(content),
	}, nil
}
