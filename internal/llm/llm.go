package llm

import (
	"context"
	"errors"
)

// Client abstracts the hosted generative-text service.
type Client interface {
	// GenerateText submits a prompt and returns the model's raw text output.
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// GenerateText returns ErrNotConfigured.
func (PlaceholderClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}
