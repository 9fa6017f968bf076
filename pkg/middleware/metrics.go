package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-cms/portfolio-api/pkg/metrics"
)

// Metrics records request counts and latency labelled by the matched route
// template, so /api/skills/:id stays one series regardless of the id.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		metrics.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
