package main

import (
	"context"
	"log"

	"github.com/heera2507/Seasonality-Publish-Recommender/internal/bootstrap"
	"github.com/heera2507/Seasonality-Publish-Recommender/internal/shared/config"
	"github.com/heera2507/Seasonality-Publish-Recommender/internal/shared/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer app.Close()

	addr := server.Addr(cfg.Port)
	log.Printf("Starting recommendation API on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
