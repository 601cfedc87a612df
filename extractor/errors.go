package extractor

import (
	"errors"
	"fmt"
	"path/filepath"
)

var (
	// ErrUnsupportedFormat is returned for extensions with no registered extractor.
	ErrUnsupportedFormat = errors.New("extractor: unsupported format")

	// ErrDecodeFailure indicates all configured text encodings were exhausted.
	ErrDecodeFailure = errors.New("extractor: could not decode content with any supported encoding")

	// ErrCorruptStructure indicates a document is missing required internal parts.
	ErrCorruptStructure = errors.New("extractor: corrupt document structure")

	// ErrEncrypted indicates a password protected document.
	ErrEncrypted = errors.New("extractor: encrypted document")

	// ErrNoText indicates a structurally valid document with no extractable text.
	ErrNoText = errors.New("extractor: no extractable text")

	// ErrToolUnavailable indicates every external conversion tool failed or timed out.
	ErrToolUnavailable = errors.New("extractor: no external conversion tool available")
)

// FileError decorates an extraction failure with the originating file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", filepath.Base(e.Path), e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
