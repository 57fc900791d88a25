package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"voice-fact-skill/pkg/log"
)

// Trace tags the request context with a trace id. An incoming X-Request-ID is
// reused, otherwise a new UUID is generated. The id is echoed in X-Trace-ID.
func (m Middleware) Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(HeaderRequestID)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := log.WithTraceID(c.Request.Context(), traceID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderTraceID, traceID)

		m.l.Debugf(ctx, "%s: %s %s", LogPrefixTrace, c.Request.Method, c.Request.URL.Path)
		c.Next()
	}
}
