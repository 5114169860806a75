package recommend

import (
	"context"
	"encoding/json"

	"github.com/heera2507/Seasonality-Publish-Recommender/internal/llm"
	"github.com/heera2507/Seasonality-Publish-Recommender/internal/shared/telemetry"
	"github.com/heera2507/Seasonality-Publish-Recommender/internal/store"
)

// Service runs the recommendation pipeline: fetch the two reference datasets,
// render the prompt, invoke the model, and normalize its output.
type Service struct {
	Store store.ReferenceStore
	LLM   llm.Client
}

// Recommend produces publish-timing data for the given article. The returned
// payload is always a valid JSON object; fallbackUsed reports whether the
// model's output had to be replaced with the fixed fallback result.
func (s *Service) Recommend(ctx context.Context, req Request) (data json.RawMessage, fallbackUsed bool, err error) {
	subs, err := s.Store.SubscriptionSummary(ctx)
	if err != nil {
		return nil, false, &UpstreamDataError{Err: err}
	}
	season, err := s.Store.SeasonalitySummary(ctx)
	if err != nil {
		return nil, false, &UpstreamDataError{Err: err}
	}

	prompt := BuildPrompt(PromptInput{
		Title:        req.Title,
		Content:      req.Content,
		Region:       req.Region,
		Subscription: subs,
		Seasonality:  season,
	})

	raw, err := s.LLM.GenerateText(ctx, prompt)
	if err != nil {
		return nil, false, &UpstreamModelError{Err: err}
	}

	data, fallbackUsed = Normalize(raw)
	if fallbackUsed {
		telemetry.Warn("recommend.parse_failed", map[string]any{
			"raw_preview": truncateRunes(raw, 500),
		})
	}
	return data, fallbackUsed, nil
}
