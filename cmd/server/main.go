package main

import (
	"fmt"
	"log"

	"lexora/internal/config"
	"lexora/internal/extract"
	"lexora/internal/handler"
	"lexora/internal/llm"
	"lexora/internal/llm/claude"
	"lexora/internal/llm/gemini"
	"lexora/internal/port"
	"lexora/internal/router"
	"lexora/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Register available LLM providers
	llm.RegisterProvider("gemini", func(pc *config.ProviderConfig) (port.TextGenerator, error) {
		return gemini.NewClient(pc), nil
	})
	llm.RegisterProvider("claude", func(pc *config.ProviderConfig) (port.TextGenerator, error) {
		return claude.NewClient(pc), nil
	})

	generator, err := buildGenerator(&cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to initialize LLM provider: %w", err)
	}

	// Initialize extraction and services
	extractor := extract.NewFileExtractor(&cfg.Extract)
	analysisSvc := service.NewAnalysisService(generator, extractor, &cfg.Pipeline)
	qaSvc := service.NewQAService(generator, &cfg.Pipeline)

	// Initialize handlers
	analyzeH := handler.NewAnalyzeHandler(analysisSvc)
	qaH := handler.NewQAHandler(qaSvc, extractor)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, analyzeH, qaH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// buildGenerator creates the primary generator, wrapped in a rate-limit
// fallback chain when a secondary provider is configured.
func buildGenerator(cfg *config.LLMConfig) (port.TextGenerator, error) {
	primary, err := llm.NewGenerator(&cfg.Primary)
	if err != nil {
		return nil, err
	}

	secondaryCfg := cfg.SecondaryConfig()
	if secondaryCfg == nil {
		return primary, nil
	}

	secondary, err := llm.NewGenerator(secondaryCfg)
	if err != nil {
		return nil, err
	}

	return llm.NewFallback(
		[]port.TextGenerator{primary, secondary},
		[]string{cfg.Primary.Provider, secondaryCfg.Provider},
	), nil
}
