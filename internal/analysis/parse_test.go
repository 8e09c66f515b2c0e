package analysis

import (
	"errors"
	"testing"
)

func TestParseSignalsValid(t *testing.T) {
	content := `Here are your signals:
{"signals":[{"symbol":"EUR/USD","direction":"buy","entryPrice":1.085,"stopLoss":1.08,"takeProfit":1.095,"timeframe":"4H","analysis":"pullback long"}]}`

	signals, err := parseSignals(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(signals) != 1 {
		t.Fatalf("expected 1 signal, got %d", len(signals))
	}
	if signals[0].Symbol != "EUR/USD" || signals[0].Direction != "buy" {
		t.Errorf("unexpected signal: %+v", signals[0])
	}
}

func TestParseSignalsRejections(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"no json", "the market looks bullish today"},
		{"not the schema", `{"foo": "bar"}`},
		{"empty list", `{"signals": []}`},
		{"bad direction", `{"signals":[{"symbol":"EUR/USD","direction":"long","entryPrice":1.085,"stopLoss":1.08,"takeProfit":1.095}]}`},
		{"missing symbol", `{"signals":[{"direction":"buy","entryPrice":1.085,"stopLoss":1.08,"takeProfit":1.095}]}`},
		{"zero price", `{"signals":[{"symbol":"EUR/USD","direction":"buy","entryPrice":0,"stopLoss":1.08,"takeProfit":1.095}]}`},
	}
	for _, tc := range cases {
		_, err := parseSignals(tc.content)
		var malformed *MalformedResponseError
		if !errors.As(err, &malformed) {
			t.Errorf("%s: expected MalformedResponseError, got %v", tc.name, err)
		}
	}
}

func TestParseSentimentValid(t *testing.T) {
	content := "```json\n" + `{"analysis":[{"pair":"EUR/USD","sentiment":"bullish","score":35,"confidence":68,"strength":"moderate","timeframe":"medium","reasoning":"soft US data","catalysts":["CPI"]}]}` + "\n```"

	results, err := parseSentiment(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Pair != "EUR/USD" {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestParseSentimentRejections(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad sentiment", `{"analysis":[{"pair":"EUR/USD","sentiment":"positive","score":10}]}`},
		{"score out of range", `{"analysis":[{"pair":"EUR/USD","sentiment":"bullish","score":150}]}`},
		{"missing pair", `{"analysis":[{"sentiment":"bullish","score":10}]}`},
		{"empty list", `{"analysis":[]}`},
	}
	for _, tc := range cases {
		_, err := parseSentiment(tc.content)
		var malformed *MalformedResponseError
		if !errors.As(err, &malformed) {
			t.Errorf("%s: expected MalformedResponseError, got %v", tc.name, err)
		}
	}
}
