package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"forex-dashboard/internal/analysis"
	"forex-dashboard/internal/calendar"
	"forex-dashboard/internal/llm"
	"forex-dashboard/internal/logger"
	"forex-dashboard/internal/market"
	"forex-dashboard/internal/news"
	"forex-dashboard/internal/sessions"
	"forex-dashboard/internal/stance"
	"forex-dashboard/internal/store"
	"forex-dashboard/internal/trace"
	"forex-dashboard/internal/translate"
)

// initializeSystem initializes environment, logger, and tracer
func initializeSystem() error {
	// Load environment variables
	_ = godotenv.Load()

	// Initialize logger
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Initialize tracer
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

// loadConfig loads and returns the configuration
func loadConfig(ctx context.Context) (*store.Config, error) {
	cfg, err := store.LoadConfig("config.yaml")
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err)
		return nil, err
	}
	return cfg, nil
}

// initializeCompleter returns the completion client, or the noop fallback
// when no provider can be reached
func initializeCompleter(ctx context.Context, cfg *store.Config, settings *store.SettingsStore) llm.Completer {
	s := settings.Get()
	if s.APIKey == "" && os.Getenv("OPENAI_API_KEY") == "" {
		logger.Warn(ctx, "No API key configured - panels will serve canned content")
		return llm.NewNoopCompleter()
	}
	return llm.NewOpenAIClient(settings, cfg.LLM.CostPer1KTokens)
}

// initializeComponents wires the collectors, the session clock, the stance
// classifier, and the analysis panels
func initializeComponents(ctx context.Context, cfg *store.Config, settings *store.SettingsStore) (*components, error) {
	clock, err := sessions.NewClock(cfg.Sessions, *cfg.ReferenceUTCOffset)
	if err != nil {
		return nil, fmt.Errorf("failed to build session clock: %w", err)
	}

	newsSvc := news.NewService(cfg.Feeds, settings)
	if cfg.Translation.TargetLang != "" {
		newsSvc.SetTranslator(translate.NewTranslator(cfg.Translation.Endpoint, cfg.Translation.TargetLang))
	}
	quotes := market.NewDemoProvider(time.Now().UnixNano())
	cal := calendar.NewScraper(cfg.Calendar.SourceURL)
	completer := initializeCompleter(ctx, cfg, settings)

	return &components{
		clock:      clock,
		classifier: stance.NewClassifier(stance.DefaultCatalog(), nil),
		news:       newsSvc,
		market:     quotes,
		calendar:   cal,
		panels:     analysis.NewService(completer, settings, newsSvc, quotes, cal, cfg.LLM),
	}, nil
}

type components struct {
	clock      *sessions.Clock
	classifier *stance.Classifier
	news       *news.Service
	market     *market.DemoProvider
	calendar   *calendar.Scraper
	panels     *analysis.Service
}
