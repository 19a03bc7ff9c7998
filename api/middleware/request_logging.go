package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"newsroom/logger"
)

const headerRequestID = "X-Request-Id"

// RequestLogging assigns a request id when the caller did not send one and
// logs method, path, status and duration for every request.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set(headerRequestID, requestID)

		c.Next()

		logger.InfoWithFields("completed request", logger.Fields{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  requestID,
		})
	}
}
