package analysis

import "forex-dashboard/internal/types"

// Canned panel output used in demo mode and whenever the provider cannot
// answer (missing key, malformed output).

func mockSignals() []types.TradingSignal {
	return []types.TradingSignal{
		{
			Symbol:     "EUR/USD",
			Direction:  "buy",
			EntryPrice: 1.0850,
			StopLoss:   1.0800,
			TakeProfit: 1.0950,
			Timeframe:  "4H",
			Analysis:   "Dovish ECB repricing has run its course while US data softens; pullback to the 1.0850 support offers a favorable risk-reward long.",
		},
		{
			Symbol:     "GBP/USD",
			Direction:  "sell",
			EntryPrice: 1.2700,
			StopLoss:   1.2750,
			TakeProfit: 1.2600,
			Timeframe:  "1D",
			Analysis:   "Sterling looks stretched after the retail sales beat; rejection at the 1.2700 supply zone favors a fade back into the range.",
		},
		{
			Symbol:     "USD/JPY",
			Direction:  "sell",
			EntryPrice: 149.80,
			StopLoss:   150.60,
			TakeProfit: 147.50,
			Timeframe:  "4H",
			Analysis:   "Intervention risk caps the upside near 150; short against that ceiling with a stop above the recent high.",
		},
	}
}

func mockSentiment() []types.SentimentResult {
	return []types.SentimentResult{
		{
			Pair:       "EUR/USD",
			Sentiment:  "bullish",
			Score:      35,
			Confidence: 68,
			Strength:   "moderate",
			Timeframe:  "medium",
			Reasoning:  "Softening US data and hawkish ECB pushback support the euro over the coming weeks.",
			Catalysts:  []string{"US CPI", "ECB speakers", "Eurozone PMI"},
		},
		{
			Pair:       "GBP/USD",
			Sentiment:  "neutral",
			Score:      5,
			Confidence: 55,
			Strength:   "weak",
			Timeframe:  "short",
			Reasoning:  "Strong consumption data offsets rate-cut expectations; no directional edge until the BoE meeting.",
			Catalysts:  []string{"BoE decision", "UK CPI"},
		},
		{
			Pair:       "USD/JPY",
			Sentiment:  "bearish",
			Score:      -40,
			Confidence: 62,
			Strength:   "moderate",
			Timeframe:  "short",
			Reasoning:  "Intervention risk above 150 skews the distribution lower despite the carry advantage.",
			Catalysts:  []string{"MoF intervention", "US yields", "BoJ policy"},
		},
	}
}

func mockFundamental() string {
	return `<h3>Major themes</h3>
<p>Central-bank divergence dominates: the Fed holds a patient line while the ECB faces mounting pressure to ease as eurozone growth stalls. Safe-haven flows support gold and the franc.</p>
<h3>Opportunities</h3>
<p><strong>Short term:</strong> USD/JPY lower on intervention risk near 150. <strong>Medium term:</strong> EUR/USD higher if US data keeps softening, watch 1.0950. <strong>Long term:</strong> GBP supported by sticky UK inflation keeping the BoE restrictive.</p>
<h3>Risks</h3>
<p>A hot US payrolls print would revive the dollar across the board and invalidate the medium-term euro view.</p>`
}

func mockInsights(question string) string {
	if question == "" {
		return "Ask a question about the forex market to get an analysis based on the latest data."
	}
	return "Demo answer: with no live provider configured, the dashboard cannot analyze your question. Add an API key in the settings to enable AI insights."
}

func mockDayBrief() string {
	return "The US jobs report is today's main event: a strong print would extend the dollar rally, with EUR/USD most exposed below 1.0800."
}
