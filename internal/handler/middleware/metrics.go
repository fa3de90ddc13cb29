package middleware

import (
	"strconv"
	"time"

	"newsletter-delivery/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count, latency, in-flight requests and response size.
// The path label is the registered route so label cardinality stays bounded.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.HTTPInflight.Inc()
		defer m.HTTPInflight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		m.HTTPRequests.WithLabelValues(method, path, status).Inc()
		m.HTTPDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		if size := c.Writer.Size(); size >= 0 {
			m.HTTPResponseBytes.WithLabelValues(method, path).Observe(float64(size))
		}
	}
}
