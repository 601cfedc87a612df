package matching

import (
	"path/filepath"
	"strings"

	"github.com/viant/afs/url"

	"github.com/doclens/doclens/matching/option"
)

// Manager handles file/directory eligibility rules applied during discovery
type Manager struct {
	options *option.Options
}

// New creates a new eligibility manager with the given options
func New(opts ...option.Option) *Manager {
	return &Manager{options: option.NewOptions(opts...)}
}

// IsExcluded checks if a path should be excluded based on the patterns
func (m *Manager) IsExcluded(location string, size int) bool {
	if m.options.MaxFileSize > 0 {
		if size > m.options.MaxFileSize {
			return true
		}
	}

	path := url.Path(location)
	// Normalize path to use forward slashes
	path = filepath.ToSlash(path)

	if len(m.options.Inclusions) > 0 {
		if !m.isIncluded(path) {
			return true
		}
	}

	for _, pattern := range m.options.Exclusions {
		pattern = strings.TrimSpace(pattern)
		// Skip comments or empty lines
		if pattern == "" || strings.HasPrefix(pattern, "#") {
			continue
		}

		if m.isExcluded(path, pattern) {
			return true
		}
	}

	return false
}

func (m *Manager) isExcluded(path string, pattern string) bool {
	// Direct substring match (common case for directories like __MACOSX)
	if strings.Contains(path, pattern) {
		return true
	}

	// Try filepath pattern matching (like .gitignore patterns)
	cleanPattern := strings.TrimPrefix(pattern, "/")
	if matched, _ := filepath.Match(cleanPattern, path); matched {
		return true
	}
	if matched, _ := filepath.Match("*/"+cleanPattern, path); matched {
		return true
	}

	// Match just basename
	baseName := filepath.Base(path)
	if pattern == baseName || strings.HasSuffix(pattern, "/"+baseName) {
		return true
	}
	if matched, _ := filepath.Match(cleanPattern, baseName); matched {
		return true
	}
	return false
}

func (m *Manager) isIncluded(path string) bool {
	for _, pattern := range m.options.Inclusions {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" || strings.HasPrefix(pattern, "#") {
			continue
		}
		if strings.Contains(path, pattern) {
			return true
		}
		if matched, _ := filepath.Match(strings.TrimPrefix(pattern, "/"), filepath.Base(path)); matched {
			return true
		}
	}
	return false
}
