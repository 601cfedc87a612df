package service

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/doclens/doclens/analyzer"
	"github.com/doclens/doclens/document"
	"github.com/doclens/doclens/matching"
)

// Search runs the full pipeline: discovery, path matching, extraction,
// delegated analysis, merge, filter and sort. Per-file failures are collected
// into stats and never abort the run; only an invalid folder is fatal.
func (s *Service) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	if err := validateFolder(req.Folder); err != nil {
		return nil, err
	}
	if req.BatchSize <= 0 {
		req.BatchSize = DefaultBatchSize
	}
	if req.MaxDocs <= 0 {
		req.MaxDocs = DefaultMaxDocs
	}
	if req.Threshold <= 0 {
		req.Threshold = RelevanceThreshold
	}
	logf := req.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	response := &SearchResponse{}
	stats := &response.Stats

	logf("scanning folder: %s", req.Folder)
	files, err := s.discover(ctx, req.Folder, req.MaxDocs)
	if err != nil {
		return nil, err
	}
	stats.TotalFound = len(files)
	logf("found %d supported files", len(files))
	if len(files) == 0 {
		return response, nil
	}

	logf("checking file and folder names for: %q", req.Query)
	pathMatches := map[string]document.PathMatch{}
	for _, file := range files {
		if match, ok := matching.MatchPath(file.relPath, req.Query); ok {
			pathMatches[file.relPath] = match
		}
	}
	if len(pathMatches) > 0 {
		logf("found %d files with matching names", len(pathMatches))
	}

	logf("extracting content from %d files", len(files))
	var docs []document.Document
	for i, file := range files {
		if req.Progress != nil {
			req.Progress(i+1, len(files), file.relPath)
		}
		doc := s.extract(ctx, file)
		if doc.Err != nil {
			stats.Skipped++
			stats.Errors = append(stats.Errors, document.FileError{File: file.relPath, Error: doc.Err.Error()})
			continue
		}
		if strings.TrimSpace(doc.Content) == "" {
			continue
		}
		stats.SuccessfullyRead++
		docs = append(docs, doc)
	}
	logf("successfully read %d files, skipped %d", stats.SuccessfullyRead, stats.Skipped)

	var analyses []document.Analysis
	if len(docs) > 0 {
		batches := batch(docs, req.BatchSize)
		logf("analyzing content for %q in %d batches", req.Query, len(batches))
		for i, docsBatch := range batches {
			inputs := make([]analyzer.Input, 0, len(docsBatch))
			for _, doc := range docsBatch {
				inputs = append(inputs, analyzer.NewInput(doc.RelPath, doc.Content))
			}
			if s.analyzer == nil {
				// No reasoner wired: surface the prompt so the host can run it.
				response.Prompts = append(response.Prompts, analyzer.BuildPrompt(req.Query, inputs))
				continue
			}
			batchAnalyses, err := s.analyzer.Analyze(ctx, req.Query, inputs)
			if err != nil {
				logf("analysis batch %d/%d failed: %v", i+1, len(batches), err)
				continue
			}
			analyses = append(analyses, batchAnalyses...)
		}
	}

	response.Results = merge(pathMatches, analyses, req.Threshold)
	stats.Matched = len(response.Results)
	logf("results: %d relevant documents", stats.Matched)
	return response, nil
}

func (s *Service) extract(ctx context.Context, file candidate) document.Document {
	doc := document.Document{Path: file.location, RelPath: file.relPath}
	data, err := s.fs.DownloadWithURL(ctx, file.location)
	if err != nil {
		doc.Err = fmt.Errorf("failed to read %s: %w", file.relPath, err)
		return doc
	}
	doc.Content, doc.Err = s.extractor.Extract(ctx, file.location, data)
	return doc
}

func validateFolder(folder string) error {
	if folder == "" {
		return fmt.Errorf("folder is required")
	}
	info, err := os.Stat(folder)
	if err != nil {
		return fmt.Errorf("folder not found: %s", folder)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a folder: %s", folder)
	}
	return nil
}

func batch(docs []document.Document, size int) [][]document.Document {
	var out [][]document.Document
	for start := 0; start < len(docs); start += size {
		end := start + size
		if end > len(docs) {
			end = len(docs)
		}
		out = append(out, docs[start:end])
	}
	return out
}

// pathWeight scales the lexical score when both sources matched.
const pathWeight = 0.3

// merge combines path and content matches. Files with both get
// min(100, content + 0.3*path); path-only matches keep the lexical score with
// a synthetic summary; content-only matches pass through.
func merge(pathMatches map[string]document.PathMatch, analyses []document.Analysis, threshold int) []document.Result {
	analyzed := map[string]document.Analysis{}
	for _, analysis := range analyses {
		analyzed[analysis.File] = analysis
	}

	var results []document.Result
	for relPath, pathMatch := range pathMatches {
		analysis, hasContent := analyzed[relPath]
		if hasContent {
			results = append(results, document.Result{
				Path:             relPath,
				Relevance:        combineScores(analysis.Relevance, pathMatch.Relevance),
				Summary:          analysis.Summary,
				Excerpts:         analysis.Excerpts,
				Sources:          []string{document.SourcePath, document.SourceContent},
				MatchedTerms:     pathMatch.MatchedTerms,
				PathRelevance:    pathMatch.Relevance,
				ContentRelevance: analysis.Relevance,
			})
			continue
		}
		results = append(results, document.Result{
			Path:         relPath,
			Relevance:    pathMatch.Relevance,
			Summary:      fmt.Sprintf("File or folder name contains: %s", strings.Join(pathMatch.MatchedTerms, ", ")),
			Excerpts:     []string{fmt.Sprintf("Path match: %s", relPath)},
			Sources:      []string{document.SourcePath},
			MatchedTerms: pathMatch.MatchedTerms,
		})
	}
	for _, analysis := range analyses {
		if _, ok := pathMatches[analysis.File]; ok {
			continue
		}
		results = append(results, document.Result{
			Path:      analysis.File,
			Relevance: analysis.Relevance,
			Summary:   analysis.Summary,
			Excerpts:  analysis.Excerpts,
			Sources:   []string{document.SourceContent},
		})
	}

	filtered := results[:0]
	for _, result := range results {
		if result.Relevance >= threshold {
			filtered = append(filtered, result)
		}
	}
	results = filtered
	sort.Slice(results, func(i, j int) bool {
		if results[i].Relevance != results[j].Relevance {
			return results[i].Relevance > results[j].Relevance
		}
		return results[i].Path < results[j].Path
	})
	return results
}

func combineScores(content, path int) int {
	combined := float64(content) + pathWeight*float64(path)
	if combined > 100 {
		combined = 100
	}
	return int(combined)
}
