package observability

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const correlationIDKey = "correlation_id"

// RequestLogger logs each request with a correlation id and records
// request metrics. The correlation id is attached to the context so the
// error middleware can reference it when reporting faults.
func RequestLogger(logger *zap.Logger, metrics *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		correlationID := c.Get("X-Correlation-ID")
		if correlationID == "" {
			correlationID = uuid.NewString()
		}
		c.Locals(correlationIDKey, correlationID)
		c.Set("X-Correlation-ID", correlationID)

		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		status := c.Response().StatusCode()
		metrics.RecordRequest(c.Path(), c.Method(), status, duration)

		logger.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("correlation_id", correlationID),
		)
		return err
	}
}

// CorrelationID returns the request's correlation id, if one was assigned.
func CorrelationID(c *fiber.Ctx) string {
	val := c.Locals(correlationIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
