package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-cms/portfolio-api/pkg/logger"
)

// RequestLogger writes one line per request. 5xx responses go to the error level.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		if status >= 500 {
			logger.Errorf("%s %s status=%d latency=%s ip=%s", c.Request.Method, path, status, latency, c.ClientIP())
			return
		}
		logger.Infof("%s %s status=%d latency=%s ip=%s", c.Request.Method, path, status, latency, c.ClientIP())
	}
}
