package domain

import "errors"

var (
	ErrExtractionFailed    = errors.New("no usable text could be extracted from document")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrFileNotFound        = errors.New("file not found")
	ErrGenerationFailed    = errors.New("model generation failed")
	ErrInvalidSummaryStyle = errors.New("invalid summary style")
	ErrInvalidCategory     = errors.New("unknown clause category")
	ErrEmptyQuestion       = errors.New("question must not be empty")
	ErrEmptyQuery          = errors.New("search query must not be empty")
)
