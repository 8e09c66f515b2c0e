package analysis

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"forex-dashboard/internal/llm"
	"forex-dashboard/internal/store"
	"forex-dashboard/internal/types"
)

type fakeCompleter struct {
	resp    llm.Response
	err     error
	lastReq llm.Request
	calls   int
}

func (f *fakeCompleter) Complete(_ context.Context, req llm.Request) (llm.Response, error) {
	f.calls++
	f.lastReq = req
	return f.resp, f.err
}

type fakeNews struct{ items []types.NewsItem }

func (f *fakeNews) Latest(context.Context) []types.NewsItem { return f.items }

type fakeQuotes struct{ quotes []types.MarketQuote }

func (f *fakeQuotes) Quotes(context.Context) ([]types.MarketQuote, error) { return f.quotes, nil }

type fakeCalendar struct{ events []types.EconomicEvent }

func (f *fakeCalendar) Events(context.Context) []types.EconomicEvent { return f.events }

func newTestService(t *testing.T, completer llm.Completer, demo bool) *Service {
	t.Helper()
	settings, err := store.OpenSettings(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := settings.Update(func(s *store.Settings) {
		s.DemoMode = demo
		s.APIKey = "test-key"
	}); err != nil {
		t.Fatal(err)
	}

	cfg := store.LLMConfig{Model: "gpt-4", SignalsModel: "gpt-3.5-turbo", Temperature: 0.7, MaxTokens: 1000}
	newsItems := []types.NewsItem{
		{Title: "Fed holds rates", Content: "patient stance", PubDate: time.Now(), Link: "https://x"},
	}
	quotes := []types.MarketQuote{{Symbol: "EUR/USD", Price: 1.085, ChangePercent: 0.2}}
	events := []types.EconomicEvent{{Date: "2024-03-05", Time: "14:30", Currency: "USD", Impact: "high", Event: "NFP", Forecast: "180K", Previous: "216K"}}

	return NewService(completer, settings, &fakeNews{newsItems}, &fakeQuotes{quotes}, &fakeCalendar{events}, cfg)
}

func TestFundamentalInjectsNewsContext(t *testing.T) {
	fc := &fakeCompleter{resp: llm.Response{Content: "<p>analysis</p>"}}
	s := newTestService(t, fc, false)

	got, err := s.Fundamental(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "<p>analysis</p>" {
		t.Errorf("unexpected content %q", got)
	}
	if !strings.Contains(fc.lastReq.Prompt, "Fed holds rates") {
		t.Error("expected news headline injected into the prompt")
	}
	if strings.Contains(fc.lastReq.Prompt, "{newsContext}") {
		t.Error("expected the placeholder to be replaced")
	}
	if fc.lastReq.Model != "gpt-4" {
		t.Errorf("unexpected model %s", fc.lastReq.Model)
	}
	if fc.lastReq.JSONMode {
		t.Error("fundamental analysis is prose, not a JSON-mode call")
	}
}

func TestSignalsUseCheaperModelAndHigherEstimate(t *testing.T) {
	fc := &fakeCompleter{resp: llm.Response{Content: `{"signals":[{"symbol":"EUR/USD","direction":"buy","entryPrice":1.085,"stopLoss":1.08,"takeProfit":1.095}]}`}}
	s := newTestService(t, fc, false)

	if _, err := s.Signals(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fc.lastReq.Model != "gpt-3.5-turbo" {
		t.Errorf("expected signals model, got %s", fc.lastReq.Model)
	}
	if fc.lastReq.EstimatedCost != llm.EstimateSignals {
		t.Errorf("expected signals estimate, got %f", fc.lastReq.EstimatedCost)
	}
	if !fc.lastReq.JSONMode {
		t.Error("expected signals to request the strict JSON response mode")
	}
}

func TestSentimentRequestsJSONMode(t *testing.T) {
	fc := &fakeCompleter{resp: llm.Response{Content: `{"analysis":[{"pair":"EUR/USD","sentiment":"bullish","score":35}]}`}}
	s := newTestService(t, fc, false)

	if _, err := s.Sentiment(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fc.lastReq.JSONMode {
		t.Error("expected sentiment to request the strict JSON response mode")
	}
}

func TestDemoModeSkipsProvider(t *testing.T) {
	fc := &fakeCompleter{resp: llm.Response{Content: "live"}}
	s := newTestService(t, fc, true)

	got, err := s.Fundamental(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == "live" || got == "" {
		t.Errorf("expected canned demo content, got %q", got)
	}
	if fc.calls != 0 {
		t.Errorf("provider must not be called in demo mode, got %d calls", fc.calls)
	}
}

func TestMalformedSignalsFallBackToMock(t *testing.T) {
	fc := &fakeCompleter{resp: llm.Response{Content: "not json at all"}}
	s := newTestService(t, fc, false)

	signals, err := s.Signals(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(signals) == 0 {
		t.Fatal("expected canned signals on malformed output")
	}
}

func TestBudgetRefusalSurfaces(t *testing.T) {
	fc := &fakeCompleter{err: &llm.BudgetExceededError{Spent: 5, Limit: 5}}
	s := newTestService(t, fc, false)

	if _, err := s.Fundamental(context.Background()); err == nil {
		t.Fatal("expected budget refusal to surface")
	}
	_, err := s.Signals(context.Background())
	var budgetErr *llm.BudgetExceededError
	if !errors.As(err, &budgetErr) {
		t.Fatalf("expected BudgetExceededError, got %v", err)
	}
}

func TestDayBriefIncludesCalendarContext(t *testing.T) {
	fc := &fakeCompleter{resp: llm.Response{Content: "brief"}}
	s := newTestService(t, fc, false)

	if _, err := s.DayBrief(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(fc.lastReq.Prompt, "NFP") {
		t.Error("expected calendar event injected into the prompt")
	}
}
