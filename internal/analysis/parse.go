package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"forex-dashboard/internal/types"
)

// MalformedResponseError reports provider output that did not match the
// strict JSON schema a panel requires.
type MalformedResponseError struct {
	Panel  string
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed %s response: %s", e.Panel, e.Reason)
}

// extractJSON locates the outermost JSON object in provider output, which
// models routinely wrap in prose or code fences.
func extractJSON(text string) (string, bool) {
	t := strings.TrimSpace(text)
	start := strings.Index(t, "{")
	end := strings.LastIndex(t, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return t[start : end+1], true
}

func parseSignals(content string) ([]types.TradingSignal, error) {
	raw, ok := extractJSON(content)
	if !ok {
		return nil, &MalformedResponseError{Panel: "tradingSignals", Reason: "no JSON object found"}
	}

	var body struct {
		Signals []types.TradingSignal `json:"signals"`
	}
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		return nil, &MalformedResponseError{Panel: "tradingSignals", Reason: err.Error()}
	}
	if len(body.Signals) == 0 {
		return nil, &MalformedResponseError{Panel: "tradingSignals", Reason: "empty signals list"}
	}

	for i, s := range body.Signals {
		if s.Symbol == "" {
			return nil, &MalformedResponseError{Panel: "tradingSignals", Reason: fmt.Sprintf("signal %d: missing symbol", i)}
		}
		if s.Direction != "buy" && s.Direction != "sell" {
			return nil, &MalformedResponseError{Panel: "tradingSignals", Reason: fmt.Sprintf("signal %d: direction %q", i, s.Direction)}
		}
		if s.EntryPrice <= 0 || s.StopLoss <= 0 || s.TakeProfit <= 0 {
			return nil, &MalformedResponseError{Panel: "tradingSignals", Reason: fmt.Sprintf("signal %d: non-positive price level", i)}
		}
	}
	return body.Signals, nil
}

func parseSentiment(content string) ([]types.SentimentResult, error) {
	raw, ok := extractJSON(content)
	if !ok {
		return nil, &MalformedResponseError{Panel: "sentimentAnalysis", Reason: "no JSON object found"}
	}

	var body struct {
		Analysis []types.SentimentResult `json:"analysis"`
	}
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		return nil, &MalformedResponseError{Panel: "sentimentAnalysis", Reason: err.Error()}
	}
	if len(body.Analysis) == 0 {
		return nil, &MalformedResponseError{Panel: "sentimentAnalysis", Reason: "empty analysis list"}
	}

	for i, r := range body.Analysis {
		switch r.Sentiment {
		case "bullish", "bearish", "neutral":
		default:
			return nil, &MalformedResponseError{Panel: "sentimentAnalysis", Reason: fmt.Sprintf("entry %d: sentiment %q", i, r.Sentiment)}
		}
		if r.Score < -100 || r.Score > 100 {
			return nil, &MalformedResponseError{Panel: "sentimentAnalysis", Reason: fmt.Sprintf("entry %d: score %.1f out of range", i, r.Score)}
		}
		if r.Pair == "" {
			return nil, &MalformedResponseError{Panel: "sentimentAnalysis", Reason: fmt.Sprintf("entry %d: missing pair", i)}
		}
	}
	return body.Analysis, nil
}
