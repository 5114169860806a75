package bootstrap

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/heera2507/Seasonality-Publish-Recommender/internal/llm"
	"github.com/heera2507/Seasonality-Publish-Recommender/internal/llm/gemini"
	"github.com/heera2507/Seasonality-Publish-Recommender/internal/recommend"
	"github.com/heera2507/Seasonality-Publish-Recommender/internal/shared/config"
	"github.com/heera2507/Seasonality-Publish-Recommender/internal/shared/server"
	"github.com/heera2507/Seasonality-Publish-Recommender/internal/store"
	bqstore "github.com/heera2507/Seasonality-Publish-Recommender/internal/store/bigquery"
)

// App holds the service's shared dependencies. Both clients are constructed
// once at startup and injected, so tests can substitute stubs.
type App struct {
	Config  config.Config
	Router  *gin.Engine
	Store   store.ReferenceStore
	LLM     llm.Client
	Handler *recommend.Handler

	bq *bqstore.Client
}

// Build connects the BigQuery and Gemini clients and wires the router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	bq, err := bqstore.New(ctx, cfg.BQProjectID)
	if err != nil {
		return nil, err
	}

	model, err := gemini.NewClient(ctx, cfg.VertexProjectID, cfg.VertexLocation, cfg.GeminiModel)
	if err != nil {
		_ = bq.Close()
		return nil, err
	}

	svc := &recommend.Service{Store: bq, LLM: model}
	handler := recommend.NewHandler(svc)

	return &App{
		Config:  cfg,
		Router:  server.NewRouter(cfg, handler),
		Store:   bq,
		LLM:     model,
		Handler: handler,
		bq:      bq,
	}, nil
}

// Close releases client connections.
func (a *App) Close() error {
	if a.bq != nil {
		return a.bq.Close()
	}
	return nil
}
