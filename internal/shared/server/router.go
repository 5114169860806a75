package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/heera2507/Seasonality-Publish-Recommender/internal/recommend"
	"github.com/heera2507/Seasonality-Publish-Recommender/internal/services/health"
	"github.com/heera2507/Seasonality-Publish-Recommender/internal/shared/config"
	"github.com/heera2507/Seasonality-Publish-Recommender/internal/shared/metrics"
	"github.com/heera2507/Seasonality-Publish-Recommender/internal/shared/server/middleware"
	"github.com/heera2507/Seasonality-Publish-Recommender/internal/shared/server/respond"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, rec *recommend.Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	healthSvc := health.NewService()
	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	r.GET("/metrics", metrics.Handler())
	rec.RegisterRoutes(r)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
