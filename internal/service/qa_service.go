package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"lexora/internal/config"
	"lexora/internal/domain"
	"lexora/internal/parser"
	"lexora/internal/port"
)

const (
	maxSupportingSpans = 3
	maxSpanLen         = 200
	minSpanLen         = 20
	minSharedWords     = 3
)

// QAService answers questions and runs searches against an analyzed document.
type QAService struct {
	generator    port.TextGenerator
	contextChars int
}

// NewQAService creates the question-answering service.
func NewQAService(generator port.TextGenerator, cfg *config.PipelineConfig) *QAService {
	contextChars := cfg.QAContextChars
	if contextChars <= 0 {
		contextChars = 10000
	}
	return &QAService{generator: generator, contextChars: contextChars}
}

// AnswerQuestion asks a question against the document, using up to three
// relevant clauses as focused context. It always returns a record; a
// generation failure produces one with the error noted and floor confidence.
func (s *QAService) AnswerQuestion(ctx context.Context, doc *domain.Document, clauses []domain.Clause, question string) (*domain.AnswerRecord, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, domain.ErrEmptyQuestion
	}

	record := &domain.AnswerRecord{
		Question: question,
		AskedAt:  time.Now().UTC(),
	}

	contextClauses := parser.RelevantClauses(question, clauses)
	record.ContextClausesUsed = len(contextClauses)

	text := truncateRunes(doc.Text, s.contextChars)

	answer, err := s.generator.Generate(ctx, parser.AnswerPrompt(text, question, contextClauses))
	if err != nil {
		log.Printf("QAService.AnswerQuestion: generation failed: %v", err)
		record.Err = err.Error()
		record.Confidence = 0.1
		return record, nil
	}

	record.Answer = answer
	record.Confidence = parser.EstimateConfidence(answer)
	record.SupportingSpans = supportingSpans(doc.Text, answer)
	return record, nil
}

// SearchDocument finds up to five passages relevant to a query.
func (s *QAService) SearchDocument(ctx context.Context, doc *domain.Document, query string) ([]domain.SearchHit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}

	text := truncateRunes(doc.Text, s.contextChars)

	raw, err := s.generator.Generate(ctx, parser.SearchPrompt(text, query))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	return parser.ParseSearchHits(raw), nil
}

// supportingSpans picks document sentences that share enough words with the
// answer to plausibly back it up.
func supportingSpans(text, answer string) []string {
	answerWords := map[string]bool{}
	for _, w := range strings.Fields(strings.ToLower(answer)) {
		answerWords[strings.Trim(w, ".,;:!?\"'()")] = true
	}

	var spans []string
	for _, sentence := range splitSentences(text) {
		if len(sentence) <= minSpanLen {
			continue
		}
		shared := 0
		for _, w := range strings.Fields(strings.ToLower(sentence)) {
			if answerWords[strings.Trim(w, ".,;:!?\"'()")] {
				shared++
			}
		}
		if shared < minSharedWords {
			continue
		}
		spans = append(spans, truncateRunes(sentence, maxSpanLen))
		if len(spans) == maxSupportingSpans {
			break
		}
	}
	return spans
}

// truncateRunes shortens s to at most max runes, never splitting a rune.
func truncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// splitSentences breaks text on sentence-final punctuation.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(text[start : i+1]); s != "" {
				sentences = append(sentences, s)
			}
			start = i + 1
		}
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}
