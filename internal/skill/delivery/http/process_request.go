package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// processWebhookReq binds and validates the platform envelope.
func (h *handler) processWebhookReq(c *gin.Context) (webhookReq, error) {
	var req webhookReq
	if err := c.ShouldBindJSON(&req.RequestEnvelope); err != nil {
		return req, fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	return req, req.validate()
}
