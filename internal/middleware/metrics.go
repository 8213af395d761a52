package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edudesk/tms-api/internal/service"
)

// Metrics records latency and status for every request. The route template
// keeps label cardinality bounded; unmatched requests collapse into a single
// series.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
