package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const unknownLabel = "unknown"

// HandleWebhook godoc
// @Summary     Skill webhook
// @Description Dispatches one voice-platform request (launch, intent or session end) and returns the spoken response. Session end is acknowledged with an empty body.
// @Tags        Skill
// @Accept      json
// @Produce     json
// @Param       X-Skill-Signature header string false "sha256=<hex> HMAC of the body, required when a webhook secret is configured"
// @Param       body body model.RequestEnvelope true "Platform request envelope"
// @Success     200 {object} speech.ResponseEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /webhook/skill [POST]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()
	start := time.Now()

	req, err := h.processWebhookReq(c)
	if err != nil {
		h.l.Warnf(ctx, "skill.delivery.http.HandleWebhook: %v", err)
		httpErr, result := h.mapError(err)
		h.metrics.observe(unknownLabel, "", result, start)
		h.writeError(c, httpErr, err)
		return
	}

	requestType := req.Request.Type
	output, err := h.uc.Handle(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Handle: %v", err)
		httpErr, result := h.mapError(err)
		h.metrics.observe(requestType, "", result, start)
		h.writeError(c, httpErr, err)
		return
	}

	result := resultOK
	if output.Fallback {
		result = resultFallback
	}
	h.metrics.observe(requestType, output.Intent, result, start)

	if output.Response == nil {
		c.Status(http.StatusOK)
		return
	}

	c.JSON(http.StatusOK, h.newWebhookResp(output))
}
