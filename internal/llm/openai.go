package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"forex-dashboard/internal/logger"
	"forex-dashboard/internal/store"
	"forex-dashboard/internal/trace"
)

// OpenAIClient calls the chat completions API. Every call passes the daily
// budget gate first; actual cost is charged to the settings store afterwards
// from the reported token usage.
type OpenAIClient struct {
	settings   *store.SettingsStore
	endpoint   string
	costPer1K  float64
	httpClient *http.Client
}

func NewOpenAIClient(settings *store.SettingsStore, costPer1K float64) *OpenAIClient {
	endpoint := "https://api.openai.com/v1/chat/completions"
	if ep := os.Getenv("OPENAI_API_ENDPOINT"); ep != "" {
		endpoint = ep
	}
	return &OpenAIClient{
		settings:   settings,
		endpoint:   endpoint,
		costPer1K:  costPer1K,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Complete runs one completion request through the budget gate and the
// provider. The request id ties the log events of one call together.
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (Response, error) {
	ctx, span := trace.StartSpan(ctx, "openai-api-call")
	defer span.End()

	requestID := uuid.NewString()

	s := c.settings.Get()
	apiKey := s.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return Response{}, &ConfigurationError{Reason: "missing API key"}
	}

	if !c.settings.CheckBudget(req.EstimatedCost) {
		// Re-read after the gate: CheckBudget may have just run the daily
		// reset, which changes the spent amount.
		s = c.settings.Get()
		logger.Budget(ctx, "refused", s.APICosts, s.DailyLimit, "panel", req.Panel, "request_id", requestID)
		return Response{}, &BudgetExceededError{Spent: s.APICosts, Limit: s.DailyLimit, Estimated: req.EstimatedCost}
	}

	body := map[string]any{
		"model":       req.Model,
		"messages":    []map[string]string{{"role": "system", "content": req.Prompt}},
		"temperature": req.Temperature,
		"max_tokens":  req.MaxTokens,
	}
	if req.JSONMode {
		body["response_format"] = map[string]string{"type": "json_object"}
	}
	bb, _ := json.Marshal(body)

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewReader(bb))
	if err != nil {
		return Response{}, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return Response{}, fmt.Errorf("openai http %d", resp.StatusCode)
	}

	var r struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			TotalTokens int `json:"total_tokens"`
		} `json:"usage"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return Response{}, err
	}
	if len(r.Choices) == 0 {
		return Response{}, errors.New("no choices")
	}

	cost := float64(r.Usage.TotalTokens) / 1000 * c.costPer1K
	if err := c.settings.AddCost(cost); err != nil {
		logger.ErrorWithErr(ctx, "Failed to record completion cost", err, "request_id", requestID)
	}

	logger.Completion(ctx, req.Panel, req.Model, cost, requestID, "tokens", r.Usage.TotalTokens)

	return Response{
		Content:     strings.TrimSpace(r.Choices[0].Message.Content),
		TotalTokens: r.Usage.TotalTokens,
		Cost:        cost,
		RequestID:   requestID,
	}, nil
}
