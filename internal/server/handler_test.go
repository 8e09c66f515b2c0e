package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"forex-dashboard/internal/llm"
	"forex-dashboard/internal/sessions"
	"forex-dashboard/internal/stance"
	"forex-dashboard/internal/store"
	"forex-dashboard/internal/types"
)

type fakeNews struct{}

func (fakeNews) Latest(context.Context) []types.NewsItem {
	return []types.NewsItem{{Title: "Fed signals hawkish patience", Content: "hawkish tone, rates higher for longer", PubDate: time.Now(), Link: "https://x"}}
}
func (fakeNews) TechnicalAnalysis(context.Context) []types.NewsItem {
	return []types.NewsItem{{Title: "EUR/USD outlook", PubDate: time.Now(), Link: "https://y"}}
}

type fakeQuotes struct{}

func (fakeQuotes) Quotes(context.Context) ([]types.MarketQuote, error) {
	return []types.MarketQuote{{Symbol: "EUR/USD", Price: 1.085}}, nil
}

type fakeCalendar struct{}

func (fakeCalendar) Events(context.Context) []types.EconomicEvent {
	return []types.EconomicEvent{{Date: "2024-03-05", Currency: "USD", Impact: "high", Event: "NFP", Time: "14:30"}}
}

type fakePanels struct {
	err error
}

func (f fakePanels) Fundamental(context.Context) (string, error) {
	return "<p>analysis</p>", f.err
}
func (f fakePanels) Sentiment(context.Context) ([]types.SentimentResult, error) {
	return []types.SentimentResult{{Pair: "EUR/USD", Sentiment: "bullish", Score: 30}}, f.err
}
func (f fakePanels) Signals(context.Context) ([]types.TradingSignal, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []types.TradingSignal{{Symbol: "EUR/USD", Direction: "buy", EntryPrice: 1.085, StopLoss: 1.08, TakeProfit: 1.095}}, nil
}
func (f fakePanels) Insights(_ context.Context, question string) (string, error) {
	return "answer to: " + question, f.err
}
func (f fakePanels) DayBrief(context.Context) (string, error) {
	return "brief", f.err
}

func newTestServer(t *testing.T, panels Panels) (*echo.Echo, *store.SettingsStore) {
	t.Helper()
	settings, err := store.OpenSettings(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatal(err)
	}

	clock, err := sessions.NewClock(store.DefaultSessions(), 1)
	if err != nil {
		t.Fatal(err)
	}
	classifier := stance.NewClassifier(stance.DefaultCatalog(), nil)

	h := NewHandler(fakeNews{}, fakeQuotes{}, fakeCalendar{}, panels, clock, classifier, settings)
	e := echo.New()
	SetupRoutes(e, h)
	return e, settings
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetSessions(t *testing.T) {
	e, _ := newTestServer(t, fakePanels{})

	rec := doRequest(e, http.MethodGet, "/api/sessions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data struct {
			Sessions    []sessions.State `json:"sessions"`
			ActivePairs []string         `json:"activePairs"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Data.Sessions) != 4 {
		t.Errorf("expected the 4 catalog sessions, got %d", len(resp.Data.Sessions))
	}
}

func TestGetStance(t *testing.T) {
	e, _ := newTestServer(t, fakePanels{})

	rec := doRequest(e, http.MethodGet, "/api/stance", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data []stance.Result `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Bank != "FED" {
		t.Fatalf("expected a FED stance from the fake headline, got %+v", resp.Data)
	}
	if resp.Data[0].Stance != stance.Hawkish {
		t.Errorf("expected hawkish stance, got %s", resp.Data[0].Stance)
	}
}

func TestGetNewsReturnsBothFeeds(t *testing.T) {
	e, _ := newTestServer(t, fakePanels{})

	rec := doRequest(e, http.MethodGet, "/api/news", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Fed signals hawkish patience") || !strings.Contains(body, "EUR/USD outlook") {
		t.Errorf("expected both feeds in response: %s", body)
	}
}

func TestBudgetRefusalMapsTo429(t *testing.T) {
	e, _ := newTestServer(t, fakePanels{err: &llm.BudgetExceededError{Spent: 5, Limit: 5}})

	rec := doRequest(e, http.MethodPost, "/api/analysis/fundamental", "")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}

	rec = doRequest(e, http.MethodGet, "/api/signals", "")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on signals, got %d", rec.Code)
	}
}

func TestPostInsightsRequiresQuestion(t *testing.T) {
	e, _ := newTestServer(t, fakePanels{})

	rec := doRequest(e, http.MethodPost, "/api/analysis/insights", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without question, got %d", rec.Code)
	}

	rec = doRequest(e, http.MethodPost, "/api/analysis/insights", `{"question":"where is EUR/USD going?"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "where is EUR/USD going?") {
		t.Errorf("expected the question forwarded to the panel: %s", rec.Body.String())
	}
}

func TestPutSettingsPartialUpdate(t *testing.T) {
	e, settings := newTestServer(t, fakePanels{})

	rec := doRequest(e, http.MethodPut, "/api/settings", `{"demoMode":false,"dailyLimit":2.5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	s := settings.Get()
	if s.DemoMode {
		t.Error("expected demoMode updated")
	}
	if s.DailyLimit != 2.5 {
		t.Errorf("expected dailyLimit 2.5, got %f", s.DailyLimit)
	}
	// untouched fields keep their defaults
	if s.RefreshInterval != 60 {
		t.Errorf("expected refreshInterval untouched, got %d", s.RefreshInterval)
	}
}

func TestPutSettingsValidation(t *testing.T) {
	e, _ := newTestServer(t, fakePanels{})

	rec := doRequest(e, http.MethodPut, "/api/settings", `{"refreshInterval":1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for tiny refresh interval, got %d", rec.Code)
	}

	rec = doRequest(e, http.MethodPut, "/api/settings", `{"dailyLimit":-1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative limit, got %d", rec.Code)
	}
}

func TestGetMarket(t *testing.T) {
	e, _ := newTestServer(t, fakePanels{})

	rec := doRequest(e, http.MethodGet, "/api/market", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "EUR/USD") {
		t.Errorf("expected quotes in response: %s", rec.Body.String())
	}
}
