package handlers

import (
	"time"

	"github.com/fadhlanhapp/trekshare-backend/logger"

	"github.com/gin-gonic/gin"
)

// slowRequest marks requests worth a warning
const slowRequest = time.Second

// RequestLogger logs every request with its status and latency
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		// Process request
		c.Next()

		latency := time.Since(start)
		entry := logger.WithFields(logger.Fields{
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"bytes":      c.Writer.Size(),
			"latency_ms": latency.Milliseconds(),
			"client_ip":  c.ClientIP(),
		})

		switch {
		case c.Writer.Status() >= 500:
			entry.Error("Request failed")
		case latency > slowRequest:
			entry.WithField("query", c.Request.URL.RawQuery).Warn("Slow request")
		default:
			entry.Info("Request handled")
		}
	}
}
