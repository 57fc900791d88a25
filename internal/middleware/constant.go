package middleware

// Headers
const (
	HeaderTraceID     = "X-Trace-ID"
	HeaderRequestID   = "X-Request-ID"
	HeaderSignature   = "X-Skill-Signature"
	HeaderForwarded   = "X-Forwarded-For"
	HeaderRealIP      = "X-Real-IP"
	signaturePrefix   = "sha256="
	encodingGzip      = "gzip"
	maxTrackedClients = 1000
)

// Log prefixes
const (
	LogPrefixSecurity = "internal.middleware.Security"
	LogPrefixTrace    = "internal.middleware.Trace"
)
