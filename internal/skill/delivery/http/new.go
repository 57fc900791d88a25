package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"voice-fact-skill/internal/skill"
	"voice-fact-skill/pkg/log"
)

// Handler is the public interface for the skill HTTP delivery layer.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l       log.Logger
	uc      skill.UseCase
	metrics *metrics
}

var _ Handler = (*handler)(nil)

// New creates the webhook handler. Dispatch metrics are registered on reg.
func New(l log.Logger, uc skill.UseCase, reg prometheus.Registerer) *handler {
	return &handler{
		l:       l,
		uc:      uc,
		metrics: newMetrics(reg),
	}
}
