package server

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"forex-dashboard/internal/llm"
	"forex-dashboard/internal/sessions"
	"forex-dashboard/internal/stance"
	"forex-dashboard/internal/store"
	"forex-dashboard/internal/types"
)

// NewsFeed serves the headline and technical feeds.
type NewsFeed interface {
	Latest(ctx context.Context) []types.NewsItem
	TechnicalAnalysis(ctx context.Context) []types.NewsItem
}

// Quotes serves market data.
type Quotes interface {
	Quotes(ctx context.Context) ([]types.MarketQuote, error)
}

// Calendar serves economic events.
type Calendar interface {
	Events(ctx context.Context) []types.EconomicEvent
}

// Panels runs the AI analysis panels.
type Panels interface {
	Fundamental(ctx context.Context) (string, error)
	Sentiment(ctx context.Context) ([]types.SentimentResult, error)
	Signals(ctx context.Context) ([]types.TradingSignal, error)
	Insights(ctx context.Context, question string) (string, error)
	DayBrief(ctx context.Context) (string, error)
}

// Handler holds the dashboard's HTTP endpoints.
type Handler struct {
	news       NewsFeed
	market     Quotes
	calendar   Calendar
	panels     Panels
	clock      *sessions.Clock
	classifier *stance.Classifier
	settings   *store.SettingsStore
}

func NewHandler(news NewsFeed, market Quotes, cal Calendar, panels Panels, clock *sessions.Clock, classifier *stance.Classifier, settings *store.SettingsStore) *Handler {
	return &Handler{
		news:       news,
		market:     market,
		calendar:   cal,
		panels:     panels,
		clock:      clock,
		classifier: classifier,
		settings:   settings,
	}
}

// GetNews returns both feeds.
func (h *Handler) GetNews(c echo.Context) error {
	ctx := c.Request().Context()
	return SuccessResponse(c, map[string]interface{}{
		"news":      h.news.Latest(ctx),
		"technical": h.news.TechnicalAnalysis(ctx),
	})
}

// GetSessions returns the session catalog evaluated at the current instant.
func (h *Handler) GetSessions(c echo.Context) error {
	now := time.Now()
	return SuccessResponse(c, map[string]interface{}{
		"sessions":    h.clock.Evaluate(now),
		"activePairs": h.clock.ActivePairs(now),
	})
}

// GetStance classifies the current headlines by central bank.
func (h *Handler) GetStance(c echo.Context) error {
	ctx := c.Request().Context()
	return SuccessResponse(c, h.classifier.Classify(h.news.Latest(ctx)))
}

// GetCalendar returns the week's economic events.
func (h *Handler) GetCalendar(c echo.Context) error {
	return SuccessResponse(c, h.calendar.Events(c.Request().Context()))
}

// GetMarket returns the current quotes.
func (h *Handler) GetMarket(c echo.Context) error {
	quotes, err := h.market.Quotes(c.Request().Context())
	if err != nil {
		return InternalServerErrorResponse(c, "market data unavailable", err)
	}
	return SuccessResponse(c, quotes)
}

// GetSignals returns the trading-signals panel.
func (h *Handler) GetSignals(c echo.Context) error {
	signals, err := h.panels.Signals(c.Request().Context())
	if err != nil {
		return h.panelError(c, err)
	}
	return SuccessResponse(c, signals)
}

// PostFundamental runs the fundamental-analysis panel.
func (h *Handler) PostFundamental(c echo.Context) error {
	content, err := h.panels.Fundamental(c.Request().Context())
	if err != nil {
		return h.panelError(c, err)
	}
	return SuccessResponse(c, map[string]string{"content": content})
}

// PostSentiment runs the sentiment panel.
func (h *Handler) PostSentiment(c echo.Context) error {
	results, err := h.panels.Sentiment(c.Request().Context())
	if err != nil {
		return h.panelError(c, err)
	}
	return SuccessResponse(c, results)
}

// PostSignals runs the trading-signals panel.
func (h *Handler) PostSignals(c echo.Context) error {
	return h.GetSignals(c)
}

// PostInsights answers a free-form question.
func (h *Handler) PostInsights(c echo.Context) error {
	var body struct {
		Question string `json:"question"`
	}
	if err := c.Bind(&body); err != nil {
		return BadRequestResponse(c, "invalid request body")
	}
	if body.Question == "" {
		return BadRequestResponse(c, "question is required")
	}

	content, err := h.panels.Insights(c.Request().Context(), body.Question)
	if err != nil {
		return h.panelError(c, err)
	}
	return SuccessResponse(c, map[string]string{"content": content})
}

// PostBrief runs the day-brief panel.
func (h *Handler) PostBrief(c echo.Context) error {
	content, err := h.panels.DayBrief(c.Request().Context())
	if err != nil {
		return h.panelError(c, err)
	}
	return SuccessResponse(c, map[string]string{"content": content})
}

// GetSettings returns the current settings.
func (h *Handler) GetSettings(c echo.Context) error {
	return SuccessResponse(c, h.settings.Get())
}

// settingsRequest carries a partial settings update. Nil fields are left
// unchanged; cost accounting fields are never client-settable.
type settingsRequest struct {
	APIKey          *string           `json:"apiKey"`
	RefreshInterval *int              `json:"refreshInterval"`
	DemoMode        *bool             `json:"demoMode"`
	DailyLimit      *float64          `json:"dailyLimit"`
	Theme           *string           `json:"theme"`
	Prompts         map[string]string `json:"prompts"`
}

// PutSettings applies a partial settings update and returns the result.
func (h *Handler) PutSettings(c echo.Context) error {
	var body settingsRequest
	if err := c.Bind(&body); err != nil {
		return BadRequestResponse(c, "invalid request body")
	}
	if body.RefreshInterval != nil && *body.RefreshInterval < 10 {
		return BadRequestResponse(c, "refreshInterval must be at least 10 seconds")
	}
	if body.DailyLimit != nil && *body.DailyLimit < 0 {
		return BadRequestResponse(c, "dailyLimit cannot be negative")
	}

	updated, err := h.settings.Update(func(s *store.Settings) {
		if body.APIKey != nil {
			s.APIKey = *body.APIKey
		}
		if body.RefreshInterval != nil {
			s.RefreshInterval = *body.RefreshInterval
		}
		if body.DemoMode != nil {
			s.DemoMode = *body.DemoMode
		}
		if body.DailyLimit != nil {
			s.DailyLimit = *body.DailyLimit
		}
		if body.Theme != nil {
			s.Theme = *body.Theme
		}
		for k, v := range body.Prompts {
			s.Prompts[k] = v
		}
	})
	if err != nil {
		return InternalServerErrorResponse(c, "failed to save settings", err)
	}
	return SuccessResponse(c, updated)
}

func (h *Handler) panelError(c echo.Context, err error) error {
	var budgetErr *llm.BudgetExceededError
	if errors.As(err, &budgetErr) {
		return BudgetResponse(c)
	}
	return InternalServerErrorResponse(c, "analysis failed", err)
}
