package http

import (
	"github.com/gin-gonic/gin"

	"voice-fact-skill/internal/middleware"
)

// RegisterRoutes mounts the webhook on path behind the security chain.
func RegisterRoutes(r gin.IRouter, path string, h Handler, mw middleware.Middleware) {
	r.POST(path,
		mw.Trace(),
		mw.AllowIPs(),
		mw.RateLimit(),
		mw.Gzip(),
		mw.VerifySignature(),
		h.HandleWebhook,
	)
}
