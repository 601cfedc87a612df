package option

import (
	"bufio"
	"io"
	"strings"
)

// Options controls which discovered files are eligible for extraction.
type Options struct {

	// Exclusions contains patterns of files/directories to exclude
	Exclusions []string `json:"exclusions,omitempty" yaml:"exclude,omitempty"`

	// Inclusions contains patterns of files/directories to include
	Inclusions []string `json:"inclusions,omitempty" yaml:"include,omitempty"`

	// MaxFileSize is the maximum size of files to consider in bytes
	MaxFileSize int `json:"maxFileSize,omitempty" yaml:"maxFileSize,omitempty"`
}

// NewOptions creates a new Options instance with default values
func NewOptions(opts ...Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	if options.Exclusions == nil {
		options.Exclusions = getDefaultPatterns()
	}
	return options
}

// Option is a function that modifies Options
type Option func(*Options)

// WithExclusionPatterns sets exclusion patterns
func WithExclusionPatterns(patterns ...string) Option {
	return func(o *Options) {
		o.Exclusions = append(o.Exclusions, patterns...)
	}
}

// WithInclusionPatterns adds patterns to include
func WithInclusionPatterns(patterns ...string) Option {
	return func(o *Options) {
		o.Inclusions = append(o.Inclusions, patterns...)
	}
}

// WithMaxFileSize sets the maximum considered file size
func WithMaxFileSize(size int) Option {
	return func(o *Options) {
		o.MaxFileSize = size
	}
}

// WithIgnoreFile adds .gitignore-style patterns from a reader
func WithIgnoreFile(reader io.Reader) Option {
	return func(o *Options) {
		if patterns := parseIgnoreFile(reader); len(patterns) > 0 {
			o.Exclusions = append(o.Exclusions, patterns...)
		}
	}
}

// getDefaultPatterns returns noise commonly found in document folders
func getDefaultPatterns() []string {
	return []string{
		// Directories
		".git/",
		".svn/",
		"__MACOSX/",
		".Trash/",
		"node_modules/",

		// Files
		".DS_Store",
		"Thumbs.db",
		"desktop.ini",
		// Office lock files
		"~$*",
		"*.tmp",
		"*.bak",
		"*.swp",
	}
}

// parseIgnoreFile reads .gitignore-style patterns from a reader
func parseIgnoreFile(reader io.Reader) []string {
	var patterns []string
	scanner := bufio.NewScanner(reader)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}

	return patterns
}
