// Package middleware holds the gin middleware shared across routes.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hrplatform/freelancer-api/internal/logger"
)

const (
	correlationHeader = "X-Correlation-ID"

	// ContextKeyCorrelationID holds the request correlation id in the gin
	// context.
	ContextKeyCorrelationID = "correlation_id"
)

// CorrelationID assigns each request a correlation id, honouring one sent
// by the caller, and echoes it back in the response.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(correlationHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(ContextKeyCorrelationID, id)
		c.Writer.Header().Set(correlationHeader, id)
		c.Next()
	}
}

// RequestLogger logs each request with its correlation id, status, and
// duration.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" || c.Request.URL.Path == "/health/ready" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		logger.Info("Handled request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("client_ip", c.ClientIP()),
			zap.String("correlation_id", c.GetString(ContextKeyCorrelationID)),
			zap.Duration("duration", time.Since(start)))
	}
}
