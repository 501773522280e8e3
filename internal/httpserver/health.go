package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"argo-assistant/internal/health"
	"argo-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "argo-assistant"
)

type healthResp struct {
	Status    string              `json:"status" example:"healthy"`
	Message   string              `json:"message,omitempty" example:"All services operational"`
	Providers health.Availability `json:"providers"`
}

type unhealthyResp struct {
	Status string `json:"status" example:"unhealthy"`
	Error  string `json:"error" example:"AI completion API key not configured"`
}

// healthCheck reports configuration health without calling any provider.
// @Summary Health Check
// @Description Reports healthy, degraded (conversation store missing) or unhealthy (AI key missing)
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} healthResp "API is healthy or degraded"
// @Failure 500 {object} unhealthyResp "API is unhealthy"
// @Router /api/health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	status := srv.healthReporter.Report()

	if status.State == health.StateUnhealthy {
		c.JSON(http.StatusInternalServerError, unhealthyResp{
			Status: string(status.State),
			Error:  status.Message,
		})
		return
	}

	response.OK(c, healthResp{
		Status:    string(status.State),
		Message:   status.Message,
		Providers: status.Providers,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
