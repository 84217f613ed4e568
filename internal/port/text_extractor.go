package port

// Extraction is the result of pulling raw text out of a document file.
type Extraction struct {
	Text       string
	PageCount  int
	Confidence float64
}

// TextExtractor is the file/text extraction collaborator. An extraction that
// yields empty text is treated by the orchestrator as a fatal failure for
// that document.
type TextExtractor interface {
	Extract(path string) (*Extraction, error)
}
