package middleware

import (
	"strconv"
	"time"

	"points-rewards/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latency labelled by the route
// template, never the raw path.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
