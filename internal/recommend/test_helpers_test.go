package recommend

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/heera2507/Seasonality-Publish-Recommender/internal/shared/server/middleware"
	"github.com/heera2507/Seasonality-Publish-Recommender/internal/store"
)

type stubStore struct {
	subscription []store.Row
	seasonality  []store.Row
	subsErr      error
	seasonErr    error

	subsCalls   int
	seasonCalls int
}

func (s *stubStore) SubscriptionSummary(ctx context.Context) ([]store.Row, error) {
	s.subsCalls++
	return s.subscription, s.subsErr
}

func (s *stubStore) SeasonalitySummary(ctx context.Context) ([]store.Row, error) {
	s.seasonCalls++
	return s.seasonality, s.seasonErr
}

type stubLLM struct {
	response string
	err      error
	prompts  []string
}

func (s *stubLLM) GenerateText(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func setupRouter(st *stubStore, model *stubLLM) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.CORS([]string{"*"}),
	)
	handler := NewHandler(&Service{Store: st, LLM: model})
	handler.RegisterRoutes(r)
	return r
}
