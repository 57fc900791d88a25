package httpserver

import (
	"github.com/gin-gonic/gin"

	"voice-fact-skill/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Robot Aaron is in the tube"
	HealthVersion = "1.0.0"
	ServiceName   = "voice-fact-skill"
)

func statusPayload(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the skill service is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, statusPayload("healthy"))
}

// readyCheck reports ready; the fact table is loaded before the server starts.
// @Summary Readiness Check
// @Description Check if the skill is ready to answer webhook calls
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, statusPayload("ready"))
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, statusPayload("alive"))
}
