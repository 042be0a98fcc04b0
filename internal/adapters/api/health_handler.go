package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherplaylist.app/internal/ports"
)

// HealthResponse represents the aggregated component health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// getHealth handles GET /api/health. Any unhealthy component turns the response into a 503.
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	response := HealthResponse{Status: "healthy", Components: results}
	code := http.StatusOK
	for _, status := range results {
		if status.Status != "healthy" {
			response.Status = "unhealthy"
			code = http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(code, response)
}
