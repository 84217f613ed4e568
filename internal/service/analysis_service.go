package service

import (
	"context"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"lexora/internal/config"
	"lexora/internal/domain"
	"lexora/internal/parser"
	"lexora/internal/port"
)

// AnalysisService orchestrates the document analysis pipeline. Stages run in
// a fixed order; text extraction failure aborts the run, every other stage
// failure is recorded and the run continues.
type AnalysisService struct {
	generator        port.TextGenerator
	extractor        port.TextExtractor
	batchConcurrency int
}

// NewAnalysisService creates the pipeline orchestrator.
func NewAnalysisService(generator port.TextGenerator, extractor port.TextExtractor, cfg *config.PipelineConfig) *AnalysisService {
	concurrency := cfg.BatchConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &AnalysisService{
		generator:        generator,
		extractor:        extractor,
		batchConcurrency: concurrency,
	}
}

// ProcessDocument runs the full pipeline on one file.
func (s *AnalysisService) ProcessDocument(ctx context.Context, path string, opts domain.AnalysisOptions) *domain.PipelineResult {
	result := &domain.PipelineResult{
		ID:          uuid.New(),
		FilePath:    path,
		FileName:    filepath.Base(path),
		Options:     opts,
		Status:      domain.StatusProcessing,
		StageErrors: map[string]string{},
		CreatedAt:   time.Now().UTC(),
	}

	extraction, err := s.extractor.Extract(path)
	if err != nil {
		log.Printf("AnalysisService.ProcessDocument: extraction failed for %s: %v", path, err)
		result.Status = domain.StatusFailed
		result.Error = err.Error()
		return result
	}
	result.Document = &domain.Document{
		Text:       extraction.Text,
		Length:     len(extraction.Text),
		PageCount:  extraction.PageCount,
		Confidence: extraction.Confidence,
	}

	text := extraction.Text

	s.runStage(ctx, result, "summary", func() error {
		raw, err := s.generator.Generate(ctx, parser.SummaryPrompt(text, opts.SummaryStyle))
		if err != nil {
			return err
		}
		result.Summary = raw
		return nil
	})

	s.runStage(ctx, result, "key_points", func() error {
		raw, err := s.generator.Generate(ctx, parser.KeyPointsPrompt(text))
		if err != nil {
			return err
		}
		result.KeyPoints = parser.ParseKeyPoints(raw)
		return nil
	})

	s.runStage(ctx, result, "entities", func() error {
		raw, err := s.generator.Generate(ctx, parser.EntitiesPrompt(text))
		if err != nil {
			return err
		}
		result.Entities = parser.ParseEntities(raw)
		return nil
	})

	if opts.ExtractClauses {
		s.runStage(ctx, result, "clauses", func() error {
			raw, err := s.generator.Generate(ctx, parser.ClausesPrompt(text, opts.ClauseCategories))
			if err != nil {
				return err
			}
			result.Clauses = parser.ParseClauses(raw)
			return nil
		})
		if len(result.Clauses) > 0 {
			result.HighlightedText = parser.HighlightClauses(text, result.Clauses)
			result.ClauseSummary = parser.SummarizeClauses(result.Clauses)
		}
	}

	if opts.GenerateQA {
		s.runStage(ctx, result, "questions", func() error {
			raw, err := s.generator.Generate(ctx, parser.QuestionsPrompt(text))
			if err != nil {
				return err
			}
			result.SuggestedQuestions = parser.ParseQuestions(raw)
			return nil
		})
	}

	if opts.GenerateBulletPoints {
		s.runStage(ctx, result, "bullet_points", func() error {
			raw, err := s.generator.Generate(ctx, parser.BulletPointsPrompt(text))
			if err != nil {
				return err
			}
			result.BulletPoints = parser.ParseBulletPoints(raw)
			return nil
		})
	}

	if opts.AnalyzeRisks {
		s.runStage(ctx, result, "risks", func() error {
			raw, err := s.generator.Generate(ctx, parser.RisksPrompt(text))
			if err != nil {
				return err
			}
			result.RiskAnalysis = parser.ParseRiskAnalysis(raw)
			return nil
		})
	}

	if opts.ExtractRelationships {
		s.runStage(ctx, result, "relationships", func() error {
			raw, err := s.generator.Generate(ctx, parser.RelationshipsPrompt(text))
			if err != nil {
				return err
			}
			result.Relationships = parser.ParseRelationships(raw)
			return nil
		})
	}

	result.Status = domain.StatusCompleted
	return result
}

// runStage executes one non-fatal pipeline stage and records its failure, if
// any, without aborting the run.
func (s *AnalysisService) runStage(ctx context.Context, result *domain.PipelineResult, name string, fn func() error) {
	if err := ctx.Err(); err != nil {
		result.StageErrors[name] = err.Error()
		return
	}
	if err := fn(); err != nil {
		log.Printf("AnalysisService.runStage: stage %s failed for %s: %v", name, result.FileName, err)
		result.StageErrors[name] = err.Error()
	}
}

// ProcessBatch analyzes several files concurrently. A bounded number of runs
// execute at once and a failure in one file never affects the others. Results
// come back in input order.
func (s *AnalysisService) ProcessBatch(ctx context.Context, paths []string, opts domain.AnalysisOptions) []*domain.PipelineResult {
	results := make([]*domain.PipelineResult, len(paths))

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.batchConcurrency)

	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = s.ProcessDocument(ctx, path, opts)
		}(i, path)
	}
	wg.Wait()

	return results
}
