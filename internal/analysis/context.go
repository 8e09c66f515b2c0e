// Package analysis runs the dashboard's AI panels: it assembles context
// strings from the collectors, fills the panel's prompt template, and calls
// the completion provider.
package analysis

import (
	"fmt"
	"strings"

	"forex-dashboard/internal/types"
)

// BuildNewsContext renders feed items into the text block injected as
// {newsContext}. Items are expected newest-first.
func BuildNewsContext(items []types.NewsItem) string {
	if len(items) == 0 {
		return "No recent news available."
	}
	var b strings.Builder
	for _, it := range items {
		fmt.Fprintf(&b, "- [%s] %s", it.PubDate.Format("2006-01-02 15:04"), it.Title)
		if it.Content != "" {
			fmt.Fprintf(&b, " :: %s", it.Content)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// BuildMarketContext renders quotes into the text block injected as
// {marketContext}.
func BuildMarketContext(quotes []types.MarketQuote) string {
	if len(quotes) == 0 {
		return "No market data available."
	}
	var b strings.Builder
	for _, q := range quotes {
		fmt.Fprintf(&b, "- %s: %.4f (%+.2f%%)\n", q.Symbol, q.Price, q.ChangePercent)
	}
	return strings.TrimRight(b.String(), "\n")
}

// BuildCalendarContext renders economic events into the text block injected
// as {calendarContext}. Only high and medium impact events are included.
func BuildCalendarContext(events []types.EconomicEvent) string {
	var b strings.Builder
	for _, e := range events {
		if e.Impact == "low" {
			continue
		}
		fmt.Fprintf(&b, "- %s %s [%s/%s] %s", e.Date, e.Time, e.Currency, e.Impact, e.Event)
		if e.Forecast != "" {
			fmt.Fprintf(&b, " (forecast %s, previous %s)", e.Forecast, e.Previous)
		}
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return "No major economic events scheduled."
	}
	return strings.TrimRight(b.String(), "\n")
}
