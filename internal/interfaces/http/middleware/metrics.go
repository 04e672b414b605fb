package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"aurum-pay.backend/pkg/metrics"
)

// MetricsMiddleware records request counts and latencies. The route
// template is used as the path label so parameterized paths do not
// explode the cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.RequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.RequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
