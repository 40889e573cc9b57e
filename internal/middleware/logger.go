package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLog writes one structured line per request.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)

		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%s %s %d %s ip=%s", c.Request.Method, path, status, latency, c.ClientIP())
		case status >= 400:
			m.l.Warnf(ctx, "%s %s %d %s ip=%s", c.Request.Method, path, status, latency, c.ClientIP())
		default:
			m.l.Infof(ctx, "%s %s %d %s ip=%s", c.Request.Method, path, status, latency, c.ClientIP())
		}
	}
}
