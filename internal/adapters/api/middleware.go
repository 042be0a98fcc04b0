package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"weatherplaylist.app/internal/ports"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// requestIDMiddleware propagates the caller's X-Request-ID or assigns a new one
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestLoggingMiddleware(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []ports.Field{
			ports.F("method", c.Request.Method),
			ports.F("path", c.Request.URL.Path),
			ports.F("status", c.Writer.Status()),
			ports.F("duration_ms", time.Since(start).Milliseconds()),
			ports.F("request_id", c.GetString(requestIDKey)),
		}

		if c.Writer.Status() >= 500 {
			logger.Error("HTTP request", fields...)
			return
		}
		logger.Info("HTTP request", fields...)
	}
}
