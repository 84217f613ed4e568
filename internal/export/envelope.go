package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"lexora/internal/domain"
)

// FormatVersion identifies the envelope schema. Bump when the result shape
// changes incompatibly.
const FormatVersion = "1.0.0"

// toolName appears in the envelope metadata so exported files are traceable.
const toolName = "lexora"

// Metadata describes when and by what an envelope was produced.
type Metadata struct {
	Timestamp     string `json:"timestamp"`
	FormatVersion string `json:"format_version"`
	Tool          string `json:"tool"`
}

// ResultEnvelope wraps a pipeline result with export metadata for durable
// JSON storage.
type ResultEnvelope struct {
	Metadata Metadata               `json:"metadata"`
	Result   *domain.PipelineResult `json:"result"`
}

// NewEnvelope wraps a result with current metadata.
func NewEnvelope(result *domain.PipelineResult) *ResultEnvelope {
	return &ResultEnvelope{
		Metadata: Metadata{
			Timestamp:     time.Now().UTC().Format(time.RFC3339),
			FormatVersion: FormatVersion,
			Tool:          toolName,
		},
		Result: result,
	}
}

// Encode writes the envelope as indented JSON.
func (e *ResultEnvelope) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("encoding result envelope: %w", err)
	}
	return nil
}

// DecodeEnvelope reads an envelope back from JSON.
func DecodeEnvelope(r io.Reader) (*ResultEnvelope, error) {
	var e ResultEnvelope
	if err := json.NewDecoder(r).Decode(&e); err != nil {
		return nil, fmt.Errorf("decoding result envelope: %w", err)
	}
	if e.Result == nil {
		return nil, fmt.Errorf("result envelope has no result")
	}
	return &e, nil
}
