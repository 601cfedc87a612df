package service

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/viant/afs/url"
)

// candidate is a discovered file eligible for extraction.
type candidate struct {
	// location is the local path usable by subprocess based extractors.
	location string
	// relPath is the path relative to the search root.
	relPath string
}

// discover enumerates supported files under root recursively, deterministic
// order, capped at maxDocs.
func (s *Service) discover(ctx context.Context, root string, maxDocs int) ([]candidate, error) {
	norm := root
	if url.Scheme(norm, "") == "" && url.IsRelative(norm) {
		var err error
		norm, err = filepath.Abs(norm)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path for %s: %w", root, err)
		}
	}
	if url.Scheme(norm, "") == "" && !url.IsRelative(norm) {
		norm = url.ToFileURL(norm)
	}
	var out []candidate
	if err := s.walk(ctx, norm, norm, &out); err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].relPath < out[j].relPath })
	if maxDocs > 0 && len(out) > maxDocs {
		out = out[:maxDocs]
	}
	return out, nil
}

func (s *Service) walk(ctx context.Context, base, location string, out *[]candidate) error {
	objects, err := s.fs.List(ctx, location)
	if err != nil {
		return err
	}
	for _, object := range objects {
		objectPath := url.Path(object.URL())
		if object.IsDir() {
			// Listing echoes the directory itself back.
			if url.Equals(object.URL(), location) || url.Equals(objectPath, url.Path(location)) {
				continue
			}
			if s.matcher.IsExcluded(objectPath+"/", 0) {
				continue
			}
			if err := s.walk(ctx, base, url.Join(location, object.Name()), out); err != nil {
				return err
			}
			continue
		}
		if !s.extractor.Supported(object.Name()) {
			continue
		}
		if s.matcher.IsExcluded(objectPath, int(object.Size())) {
			continue
		}
		*out = append(*out, candidate{
			location: objectPath,
			relPath:  relativePath(base, objectPath),
		})
	}
	return nil
}

func relativePath(base, objectPath string) string {
	basePath := filepath.ToSlash(url.Path(base))
	rel := strings.TrimPrefix(filepath.ToSlash(objectPath), basePath)
	return strings.TrimPrefix(rel, "/")
}
