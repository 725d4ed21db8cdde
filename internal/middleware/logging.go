package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"deptrack-core/internal/logger"
)

// RequestLogger logs one line per request with method, path, status and
// latency. Server errors log at error level so they stand out.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()

		c.Next()

		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(started).String(),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		if c.Writer.Status() >= 500 {
			log.Error("request failed", fields...)
			return
		}
		log.Info("request handled", fields...)
	}
}
