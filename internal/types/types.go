package types

import "time"

// NewsItem is a normalized feed entry. Immutable once fetched.
type NewsItem struct {
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	PubDate  time.Time `json:"pubDate"`
	Link     string    `json:"link"`
	Category string    `json:"category"`
	Author   string    `json:"author,omitempty"`

	// TranslatedTitle/TranslatedContent are filled by the translation
	// layer when the dashboard language differs from the feed language.
	TranslatedTitle   string `json:"translatedTitle,omitempty"`
	TranslatedContent string `json:"translatedContent,omitempty"`
}

// MarketQuote is a single currency-pair quote.
type MarketQuote struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	Timestamp     int64   `json:"timestamp,omitempty"`
}

// EconomicEvent is one row of the economic calendar.
type EconomicEvent struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Time     string `json:"time"` // HH:MM
	Currency string `json:"currency"`
	Impact   string `json:"impact"` // high, medium, low
	Event    string `json:"event"`
	Actual   string `json:"actual,omitempty"`
	Forecast string `json:"forecast,omitempty"`
	Previous string `json:"previous,omitempty"`
}

// TradingSignal is one entry of the provider-generated signal list.
type TradingSignal struct {
	Symbol     string  `json:"symbol"`
	Direction  string  `json:"direction"` // buy or sell
	EntryPrice float64 `json:"entryPrice"`
	StopLoss   float64 `json:"stopLoss"`
	TakeProfit float64 `json:"takeProfit"`
	Timeframe  string  `json:"timeframe"`
	Analysis   string  `json:"analysis"`
}

// SentimentResult is one entry of the provider-generated sentiment panel.
type SentimentResult struct {
	Pair       string   `json:"pair"`
	Sentiment  string   `json:"sentiment"` // bullish, bearish, neutral
	Score      float64  `json:"score"`     // -100..+100
	Confidence float64  `json:"confidence"`
	Strength   string   `json:"strength"`  // strong, moderate, weak
	Timeframe  string   `json:"timeframe"` // short, medium, long
	Reasoning  string   `json:"reasoning"`
	Catalysts  []string `json:"catalysts"`
}
