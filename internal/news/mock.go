package news

import (
	"fmt"
	"time"

	"forex-dashboard/internal/types"
)

// MockNews returns canned headlines for demo mode and for fetch-failure
// fallback. Items alternate between central-bank and general market stories
// so the stance classifier has material to work with, and are stamped
// newest-first.
func MockNews(now time.Time) []types.NewsItem {
	headlines := []struct {
		title    string
		content  string
		category string
	}{
		{"Fed signals patience on rate cuts as inflation cools", "Federal Reserve officials indicated they are in no rush to cut rates, citing resilient labor market data and sticky services inflation.", "Central Bank"},
		{"EUR/USD steadies near 1.0850 ahead of US payrolls", "The pair traded in a tight range as markets await the nonfarm payrolls report for direction on the dollar.", "News"},
		{"ECB's Lagarde: rate path depends on wage growth data", "The ECB president said the governing council needs more evidence that wage pressures are easing before considering a hausse reversal.", "Central Bank"},
		{"Gold extends rally on safe-haven demand", "Bullion climbed for a third session as geopolitical tensions pushed investors into defensive assets.", "News"},
		{"BOE holds rates, Bailey flags gradual easing ahead", "The Bank of England kept Bank Rate unchanged, with Governor Bailey describing the stance as restrictive but appropriate.", "Central Bank"},
		{"USD/JPY tests 150 as intervention chatter grows", "Traders grew wary of Ministry of Finance action after the yen slid to multi-decade lows against the dollar.", "News"},
		{"Fed's hawkish minutes push Treasury yields higher", "Minutes from the latest FOMC meeting showed several members favored keeping rates higher for longer.", "Central Bank"},
		{"Oil slips on surprise inventory build", "Crude futures fell after US stockpiles rose more than expected, weighing on commodity currencies.", "News"},
		{"BCE seen dovish as eurozone growth stalls", "Economists expect the central bank to turn accommodant as PMI surveys point to contraction in the bloc.", "Central Bank"},
		{"GBP/USD firms on upbeat UK retail sales", "Sterling gained after consumer spending data beat forecasts, trimming bets on early rate cuts.", "News"},
		{"Powell testimony: no urgency to adjust policy", "The Fed chair told lawmakers the committee can be patient given the strength of the economy.", "Central Bank"},
		{"AUD/USD rebounds as risk appetite returns", "The aussie recovered alongside equities after a soft US inflation print revived rate-cut hopes.", "News"},
		{"ECB officials split on timing of first cut", "Hawkish members want confirmation from spring wage data while doves argue restriction is already biting.", "Central Bank"},
		{"Swiss franc slides after SNB surprise", "The franc weakened broadly after the Swiss National Bank delivered an unexpected policy easing.", "News"},
		{"BOE's Mann warns against premature easing", "The MPC member said cutting too early risks entrenching above-target inflation.", "Central Bank"},
		{"USD/CAD climbs as oil weakness hits the loonie", "The pair advanced for a second day, tracking lower crude prices and a broadly firmer greenback.", "News"},
		{"Fed balance sheet runoff to slow, officials suggest", "Policymakers discussed tapering quantitative tightening to avoid money-market strain.", "Central Bank"},
		{"NZD/USD dips after soft employment report", "The kiwi fell as rising unemployment bolstered the case for RBNZ rate cuts this year.", "News"},
		{"Lagarde pushes back on market pricing for cuts", "The ECB president called aggressive easing bets premature, lifting the euro.", "Central Bank"},
		{"Dollar index hovers near monthly high", "The greenback held gains as traders scaled back expectations for policy easing.", "News"},
	}

	items := make([]types.NewsItem, 0, len(headlines))
	for i, h := range headlines {
		items = append(items, types.NewsItem{
			Title:    h.title,
			Content:  h.content,
			PubDate:  now.Add(-time.Duration(i) * 30 * time.Minute),
			Link:     fmt.Sprintf("https://example.com/news/%d", i+1),
			Category: h.category,
			Author:   "Demo Desk",
		})
	}
	return items
}

// MockTechnical returns canned technical-analysis entries for demo mode.
func MockTechnical(now time.Time) []types.NewsItem {
	entries := []struct {
		title   string
		content string
	}{
		{"EUR/USD technical: bullish above 1.0800 pivot", "Price holds above the 200-day moving average with RSI at 58. Resistance at 1.0920, support at 1.0800."},
		{"GBP/USD outlook: range trade between 1.2600 and 1.2750", "Momentum indicators are flat; a daily close outside the range would set the next directional leg."},
		{"USD/JPY analysis: overbought but trend intact", "RSI above 70 warns of a pullback, yet the uptrend channel from January remains unbroken."},
		{"Gold technical: breakout targets 2400", "The metal cleared descending trendline resistance; MACD crossover supports further upside."},
		{"AUD/USD: double bottom forming near 0.6450", "A confirmed neckline break at 0.6550 would project a move toward 0.6650."},
		{"EUR/JPY wave count points to one more high", "Elliott analysis suggests a final fifth wave before a larger corrective phase begins."},
	}

	items := make([]types.NewsItem, 0, len(entries))
	for i, e := range entries {
		items = append(items, types.NewsItem{
			Title:    e.title,
			Content:  e.content,
			PubDate:  now.Add(-time.Duration(i) * time.Hour),
			Link:     fmt.Sprintf("https://example.com/technical/%d", i+1),
			Category: "Technical Analysis",
			Author:   "Demo Desk",
		})
	}
	return items
}
