package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"luvo/pkg/metrics"
)

// Metrics 记录请求数和耗时，未匹配的路由统一记为 unmatched
func Metrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		collector.RecordRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
