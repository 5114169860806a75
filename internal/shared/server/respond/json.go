package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse is the envelope for successful recommendation responses.
type SuccessResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

// Success writes a 200 OK envelope around the given payload.
func Success(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, SuccessResponse{Status: "success", Data: payload})
}

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}
