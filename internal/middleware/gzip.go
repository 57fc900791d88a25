package middleware

import (
	"compress/gzip"
	"strings"

	"github.com/gin-gonic/gin"

	"voice-fact-skill/pkg/response"
)

type gzipWriter struct {
	gin.ResponseWriter
	zw *gzip.Writer
}

func (w *gzipWriter) Write(b []byte) (int, error) {
	return w.zw.Write(b)
}

func (w *gzipWriter) WriteString(s string) (int, error) {
	return w.zw.Write([]byte(s))
}

// Gzip inflates gzip request bodies and compresses responses for clients that
// accept gzip.
func (m Middleware) Gzip() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.Contains(c.GetHeader("Content-Encoding"), encodingGzip) {
			zr, err := gzip.NewReader(c.Request.Body)
			if err != nil {
				m.l.Warnf(c.Request.Context(), "%s: gzip body: %v", LogPrefixSecurity, err)
				response.Error(c, err, nil)
				return
			}
			defer zr.Close()
			c.Request.Body = zr
			c.Request.Header.Del("Content-Encoding")
		}

		if !strings.Contains(c.GetHeader("Accept-Encoding"), encodingGzip) {
			c.Next()
			return
		}

		zw := gzip.NewWriter(c.Writer)
		defer zw.Close()

		c.Header("Content-Encoding", encodingGzip)
		c.Header("Vary", "Accept-Encoding")
		c.Writer = &gzipWriter{ResponseWriter: c.Writer, zw: zw}
		c.Next()
	}
}
