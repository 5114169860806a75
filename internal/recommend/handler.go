package recommend

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/heera2507/Seasonality-Publish-Recommender/internal/shared/metrics"
	"github.com/heera2507/Seasonality-Publish-Recommender/internal/shared/server/respond"
)

// Handler wires the recommendation endpoint to the pipeline service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the recommendation routes to the engine.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/recommend", h.recommend)
	// Preflight probes are answered by the CORS middleware before this
	// handler runs; the route keeps OPTIONS out of the 404 path.
	r.OPTIONS("/recommend", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}

func (h *Handler) recommend(c *gin.Context) {
	metrics.IncRecommendationStarted()
	start := metrics.NowMillis()

	req, err := bindRequest(c)
	if err != nil {
		metrics.IncRecommendationFailed()
		writeError(c, err)
		return
	}

	data, fallbackUsed, err := h.Svc.Recommend(c.Request.Context(), req)
	if err != nil {
		metrics.IncRecommendationFailed()
		writeError(c, err)
		return
	}

	if fallbackUsed {
		metrics.IncRecommendationFallback()
	}
	metrics.IncRecommendationCompleted()
	metrics.ObserveRecommendationDurationMs(metrics.NowMillis() - start)

	c.Set("fallbackUsed", fallbackUsed)
	respond.Success(c, data)
}

func bindRequest(c *gin.Context) (Request, error) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		return Request{}, &ValidationError{Message: "No JSON data provided"}
	}
	if req.Title == "" || req.Content == "" {
		return Request{}, &ValidationError{Message: "Title and content are required"}
	}
	if req.Region == "" {
		req.Region = defaultRegion
	}
	return req, nil
}

// writeError maps the closed error set to status codes. Upstream failures
// surface their own description, matching the front-end's existing contract.
func writeError(c *gin.Context, err error) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		respond.Error(c, http.StatusBadRequest, validationErr.Message)
		return
	}
	respond.Error(c, http.StatusInternalServerError, err.Error())
}
