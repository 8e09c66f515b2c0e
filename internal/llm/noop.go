package llm

import (
	"context"

	"forex-dashboard/internal/logger"
)

// NoopCompleter is wired when no provider is configured. It always reports
// a configuration error so panels fall back to their canned output.
type NoopCompleter struct{}

func NewNoopCompleter() *NoopCompleter {
	return &NoopCompleter{}
}

func (n *NoopCompleter) Complete(ctx context.Context, req Request) (Response, error) {
	logger.Debug(ctx, "Noop completer called", "panel", req.Panel)
	return Response{}, &ConfigurationError{Reason: "no completion provider wired"}
}
