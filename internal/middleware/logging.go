package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Logging emits one structured line per request after the handler runs. The
// request id comes from the RequestID middleware via the gin context, so the
// logged id matches the one returned to the caller even when none was
// supplied.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := log.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"latency_ms": time.Since(start).Milliseconds(),
		}
		if id, ok := c.Get(requestIDKey); ok {
			fields["request_id"] = id
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		log.WithFields(fields).Info("request completed")
	}
}
