package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lexora/internal/config"
	"lexora/internal/domain"
	"lexora/internal/port"
)

// FileExtractor implements port.TextExtractor for .txt and .pdf files.
type FileExtractor struct {
	maxFileSize int64
}

// NewFileExtractor creates an extractor enforcing the configured size cap.
func NewFileExtractor(cfg *config.ExtractConfig) *FileExtractor {
	return &FileExtractor{maxFileSize: cfg.MaxFileSizeMB * 1024 * 1024}
}

// Extract reads a file and produces its text with a confidence score.
func (e *FileExtractor) Extract(path string) (*port.Extraction, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if e.maxFileSize > 0 && info.Size() > e.maxFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit is %d",
			domain.ErrFileTooLarge, path, info.Size(), e.maxFileSize)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return extractTxt(path)
	case ".pdf":
		return extractPDF(path)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, filepath.Ext(path))
	}
}

// extractTxt reads a plain text file as-is. Plain text needs no decoding, so
// confidence is always 1.0.
func extractTxt(path string) (*port.Extraction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrExtractionFailed, path, err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, fmt.Errorf("%w: %s is empty", domain.ErrExtractionFailed, path)
	}
	return &port.Extraction{
		Text:       text,
		PageCount:  1,
		Confidence: 1.0,
	}, nil
}
