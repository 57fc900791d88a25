package middleware

import (
	"bytes"
	"io"

	"github.com/gin-gonic/gin"

	"voice-fact-skill/pkg/response"
)

// AllowIPs rejects callers outside the configured allowlist with 403.
// The caller address comes from c.ClientIP, so forwarding headers count only
// when the engine trusts the connecting proxy.
func (m Middleware) AllowIPs() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !ipAllowed(m.config.AllowedIPs, ip) {
			m.l.Warnf(c.Request.Context(), "%s: IP %s not whitelisted", LogPrefixSecurity, ip)
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}

// VerifySignature checks HeaderSignature against the body when a secret is
// configured. The body is restored for the next handler.
func (m Middleware) VerifySignature() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.config.Secret == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			m.l.Errorf(ctx, "%s: read body: %v", LogPrefixSecurity, err)
			response.Error(c, err, nil)
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		if err := validateSignature(m.config.Secret, body, c.GetHeader(HeaderSignature)); err != nil {
			m.l.Warnf(ctx, "%s: %v", LogPrefixSecurity, err)
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}

// RateLimit throttles each client IP when a per-minute limit is configured.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.rateLimiter == nil {
			c.Next()
			return
		}

		if err := m.rateLimiter.Allow(c.ClientIP()); err != nil {
			m.l.Warnf(c.Request.Context(), "%s: %v", LogPrefixSecurity, err)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
