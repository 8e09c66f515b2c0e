// Package llm provides the completion client behind the analysis panels,
// with a daily cost budget enforced before every provider call.
package llm

import "context"

// Estimated per-call costs used by the budget gate before the real token
// count is known. Signals calls carry a larger prompt.
const (
	EstimateAnalysis = 0.03
	EstimateSignals  = 0.05
)

// Request describes one completion call.
type Request struct {
	Panel         string // which dashboard panel is asking, for logging
	Prompt        string
	Model         string
	Temperature   float32
	MaxTokens     int
	EstimatedCost float64
	JSONMode      bool // ask the provider for a strict JSON document
}

// Response is the provider's answer plus cost accounting.
type Response struct {
	Content     string
	TotalTokens int
	Cost        float64
	RequestID   string
}

// Completer produces completions for analysis prompts.
type Completer interface {
	Complete(ctx context.Context, req Request) (Response, error)
}

// ConfigurationError reports a provider that cannot be called at all, such
// as a missing API key. Callers degrade to canned panel data.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "llm not configured: " + e.Reason
}

// BudgetExceededError reports a call refused by the daily cost gate.
type BudgetExceededError struct {
	Spent     float64
	Limit     float64
	Estimated float64
}

func (e *BudgetExceededError) Error() string {
	return "daily cost limit reached"
}
