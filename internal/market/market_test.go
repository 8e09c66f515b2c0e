package market

import (
	"context"
	"testing"
)

func TestDemoProviderReturnsAllPairs(t *testing.T) {
	p := NewDemoProvider(1)

	quotes, err := p.Quotes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != len(trackedPairs) {
		t.Fatalf("expected %d quotes, got %d", len(trackedPairs), len(quotes))
	}
	for i, q := range quotes {
		if q.Symbol != trackedPairs[i] {
			t.Errorf("expected pair %s at index %d, got %s", trackedPairs[i], i, q.Symbol)
		}
		if q.Price <= 0 {
			t.Errorf("%s: non-positive price %f", q.Symbol, q.Price)
		}
	}
}

func TestDemoProviderWalksWithinBounds(t *testing.T) {
	p := NewDemoProvider(42)

	for i := 0; i < 500; i++ {
		quotes, err := p.Quotes(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, q := range quotes {
			base := basePrices[q.Symbol]
			if q.Price > base*1.02 || q.Price < base*0.98 {
				t.Fatalf("%s drifted out of bounds: %f (base %f)", q.Symbol, q.Price, base)
			}
		}
	}
}

func TestDemoProviderChangeConsistency(t *testing.T) {
	p := NewDemoProvider(7)

	quotes, err := p.Quotes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, q := range quotes {
		open := q.Price - q.Change
		if open <= 0 {
			t.Fatalf("%s: implied open %f not positive", q.Symbol, open)
		}
		wantPct := q.Change / open * 100
		if diff := q.ChangePercent - wantPct; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("%s: changePercent %f inconsistent with change %f", q.Symbol, q.ChangePercent, q.Change)
		}
	}
}
