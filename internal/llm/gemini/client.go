package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/heera2507/Seasonality-Publish-Recommender/internal/shared/telemetry"
)

// Generation parameters for publish-timing recommendations. Low temperature
// keeps the output close to the dataset evidence.
const (
	temperature     float32 = 0.2
	topP            float32 = 0.9
	maxOutputTokens int32   = 7000
)

// Client implements llm.Client against Vertex-hosted Gemini.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient connects a Gemini client bound to the given Vertex project and
// location.
func NewClient(ctx context.Context, projectID, location, model string) (*Client, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, fmt.Errorf("VERTEX_PROJECT_ID is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("GEMINI_MODEL is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// GenerateText submits the prompt in a single synchronous call and returns the
// model's raw text. No retries and no streaming.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(temperature),
		TopP:            genai.Ptr(topP),
		MaxOutputTokens: maxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini response empty")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	text := b.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini response empty content")
	}

	telemetry.Info("gemini.raw_response", map[string]any{
		"model":   c.model,
		"preview": preview(text, 1000),
	})
	return text, nil
}

func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
