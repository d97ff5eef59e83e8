package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medatlas/directory-api/pkg/logger"
)

// Logger returns a middleware that logs HTTP requests through the
// application logger. Status picks the level: 5xx error, 4xx warn.
func Logger(l *logger.Logger) gin.HandlerFunc {
	if l == nil {
		l = logger.NewLogger(nil)
	}
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		fields := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
			"request_id", c.GetString(ContextRequestID),
		}

		switch {
		case c.Writer.Status() >= 500:
			l.Error(nil, "request", fields...)
		case c.Writer.Status() >= 400:
			l.Warn("request", fields...)
		default:
			l.Info("request", fields...)
		}
	}
}
