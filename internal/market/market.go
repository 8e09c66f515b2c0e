// Package market serves currency-pair quotes for the dashboard overview.
package market

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"forex-dashboard/internal/types"
)

// QuoteProvider returns quotes for the tracked currency pairs.
type QuoteProvider interface {
	Quotes(ctx context.Context) ([]types.MarketQuote, error)
}

// basePrices anchor the demo random walk around realistic levels.
var basePrices = map[string]float64{
	"EUR/USD": 1.0850,
	"GBP/USD": 1.2650,
	"USD/JPY": 149.50,
	"USD/CHF": 0.8840,
	"AUD/USD": 0.6520,
	"USD/CAD": 1.3580,
	"NZD/USD": 0.6080,
	"EUR/GBP": 0.8570,
}

// trackedPairs fixes the display order of the overview panel.
var trackedPairs = []string{
	"EUR/USD", "GBP/USD", "USD/JPY", "USD/CHF",
	"AUD/USD", "USD/CAD", "NZD/USD", "EUR/GBP",
}

// DemoProvider generates quotes by random-walking each pair around its base
// price. Each call moves the walk one step so repeated polls show movement.
type DemoProvider struct {
	mu     sync.Mutex
	rng    *rand.Rand
	prices map[string]float64
	opens  map[string]float64
}

func NewDemoProvider(seed int64) *DemoProvider {
	p := &DemoProvider{
		rng:    rand.New(rand.NewSource(seed)),
		prices: make(map[string]float64, len(basePrices)),
		opens:  make(map[string]float64, len(basePrices)),
	}
	for pair, base := range basePrices {
		p.prices[pair] = base
		p.opens[pair] = base
	}
	return p
}

// Quotes advances every pair one random-walk step and returns the snapshot
// in the fixed display order.
func (p *DemoProvider) Quotes(_ context.Context) ([]types.MarketQuote, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now().UnixMilli()
	quotes := make([]types.MarketQuote, 0, len(trackedPairs))
	for _, pair := range trackedPairs {
		price := p.step(pair)
		open := p.opens[pair]
		change := price - open
		quotes = append(quotes, types.MarketQuote{
			Symbol:        pair,
			Price:         price,
			Change:        change,
			ChangePercent: change / open * 100,
			Timestamp:     now,
		})
	}
	return quotes, nil
}

// step moves one pair by up to ±0.1% and clamps the drift to ±2% of the
// base price so demo quotes stay plausible over long sessions.
func (p *DemoProvider) step(pair string) float64 {
	base := basePrices[pair]
	price := p.prices[pair] * (1 + (p.rng.Float64()-0.5)*0.002)

	if price > base*1.02 {
		price = base * 1.02
	}
	if price < base*0.98 {
		price = base * 0.98
	}
	p.prices[pair] = price
	return price
}
