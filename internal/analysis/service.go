package analysis

import (
	"context"
	"errors"

	"forex-dashboard/internal/llm"
	"forex-dashboard/internal/logger"
	"forex-dashboard/internal/prompt"
	"forex-dashboard/internal/store"
	"forex-dashboard/internal/types"
)

// News is the headline dependency of the panels.
type News interface {
	Latest(ctx context.Context) []types.NewsItem
}

// Quotes is the market data dependency of the panels.
type Quotes interface {
	Quotes(ctx context.Context) ([]types.MarketQuote, error)
}

// Calendar is the economic events dependency of the panels.
type Calendar interface {
	Events(ctx context.Context) []types.EconomicEvent
}

// Service runs the analysis panels. Each panel degrades to canned content
// when the provider cannot answer; only a budget refusal is surfaced to the
// caller so the UI can explain the refusal.
type Service struct {
	completer llm.Completer
	settings  *store.SettingsStore
	news      News
	market    Quotes
	calendar  Calendar
	cfg       store.LLMConfig
}

func NewService(completer llm.Completer, settings *store.SettingsStore, newsSvc News, market Quotes, cal Calendar, cfg store.LLMConfig) *Service {
	return &Service{
		completer: completer,
		settings:  settings,
		news:      newsSvc,
		market:    market,
		calendar:  cal,
		cfg:       cfg,
	}
}

// Fundamental produces the fundamental-analysis panel text.
func (s *Service) Fundamental(ctx context.Context) (string, error) {
	content, err := s.complete(ctx, "fundamentalAnalysis", s.cfg.Model, llm.EstimateAnalysis, false, map[string]string{
		"newsContext": BuildNewsContext(s.news.Latest(ctx)),
	})
	if err != nil {
		return s.degradeText(ctx, "fundamentalAnalysis", err, mockFundamental())
	}
	return content, nil
}

// Sentiment produces the sentiment panel entries.
func (s *Service) Sentiment(ctx context.Context) ([]types.SentimentResult, error) {
	content, err := s.complete(ctx, "sentimentAnalysis", s.cfg.Model, llm.EstimateAnalysis, true, map[string]string{
		"marketContext": s.marketContext(ctx),
		"newsContext":   BuildNewsContext(s.news.Latest(ctx)),
	})
	if err != nil {
		return s.degradeSentiment(ctx, err)
	}

	results, err := parseSentiment(content)
	if err != nil {
		return s.degradeSentiment(ctx, err)
	}
	return results, nil
}

// Signals produces the trading-signals panel entries. Signals use the
// cheaper model and a larger cost estimate for the gate.
func (s *Service) Signals(ctx context.Context) ([]types.TradingSignal, error) {
	content, err := s.complete(ctx, "tradingSignals", s.cfg.SignalsModel, llm.EstimateSignals, true, map[string]string{
		"marketContext": s.marketContext(ctx),
		"newsContext":   BuildNewsContext(s.news.Latest(ctx)),
	})
	if err != nil {
		return s.degradeSignals(ctx, err)
	}

	signals, err := parseSignals(content)
	if err != nil {
		return s.degradeSignals(ctx, err)
	}
	return signals, nil
}

// Insights answers a free-form user question with market context.
func (s *Service) Insights(ctx context.Context, question string) (string, error) {
	content, err := s.complete(ctx, "aiInsights", s.cfg.Model, llm.EstimateAnalysis, false, map[string]string{
		"marketContext": s.marketContext(ctx),
		"newsContext":   BuildNewsContext(s.news.Latest(ctx)),
		"question":      question,
	})
	if err != nil {
		return s.degradeText(ctx, "aiInsights", err, mockInsights(question))
	}
	return content, nil
}

// DayBrief produces the short daily-summary panel.
func (s *Service) DayBrief(ctx context.Context) (string, error) {
	content, err := s.complete(ctx, "dayBrief", s.cfg.Model, llm.EstimateAnalysis, false, map[string]string{
		"marketContext":   s.marketContext(ctx),
		"newsContext":     BuildNewsContext(s.news.Latest(ctx)),
		"calendarContext": BuildCalendarContext(s.calendar.Events(ctx)),
	})
	if err != nil {
		return s.degradeText(ctx, "dayBrief", err, mockDayBrief())
	}
	return content, nil
}

func (s *Service) complete(ctx context.Context, panelKey, model string, estimate float64, jsonMode bool, contextMap map[string]string) (string, error) {
	settings := s.settings.Get()
	if settings.DemoMode {
		return "", &llm.ConfigurationError{Reason: "demo mode"}
	}

	template, ok := settings.Prompts[panelKey]
	if !ok {
		return "", &llm.ConfigurationError{Reason: "no prompt template for " + panelKey}
	}

	resp, err := s.completer.Complete(ctx, llm.Request{
		Panel:         panelKey,
		Prompt:        prompt.Inject(template, contextMap),
		Model:         model,
		Temperature:   s.cfg.Temperature,
		MaxTokens:     s.cfg.MaxTokens,
		EstimatedCost: estimate,
		JSONMode:      jsonMode,
	})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

func (s *Service) marketContext(ctx context.Context) string {
	quotes, err := s.market.Quotes(ctx)
	if err != nil {
		logger.ErrorWithErr(ctx, "Market data unavailable for analysis", err)
		return BuildMarketContext(nil)
	}
	return BuildMarketContext(quotes)
}

// degradeText maps panel failures to canned output, except budget refusals
// which the caller must see.
func (s *Service) degradeText(ctx context.Context, panel string, err error, fallback string) (string, error) {
	var budgetErr *llm.BudgetExceededError
	if errors.As(err, &budgetErr) {
		return "", err
	}
	logger.Warn(ctx, "Panel degraded to canned content", "panel", panel, "reason", err.Error())
	return fallback, nil
}

func (s *Service) degradeSignals(ctx context.Context, err error) ([]types.TradingSignal, error) {
	var budgetErr *llm.BudgetExceededError
	if errors.As(err, &budgetErr) {
		return nil, err
	}
	logger.Warn(ctx, "Panel degraded to canned content", "panel", "tradingSignals", "reason", err.Error())
	return mockSignals(), nil
}

func (s *Service) degradeSentiment(ctx context.Context, err error) ([]types.SentimentResult, error) {
	var budgetErr *llm.BudgetExceededError
	if errors.As(err, &budgetErr) {
		return nil, err
	}
	logger.Warn(ctx, "Panel degraded to canned content", "panel", "sentimentAnalysis", "reason", err.Error())
	return mockSentiment(), nil
}
