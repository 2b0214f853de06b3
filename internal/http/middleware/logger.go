package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"samayas/internal/logger"
)

// Logger emits one structured access log line per request.
func Logger(log logger.ILogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		log.Info("http request",
			logger.String("request_id", GetRequestID(c)),
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Int64("latency_ms", latency.Milliseconds()),
			logger.String("ip", c.ClientIP()),
		)
	}
}
