package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/molcraft/molcraft/internal/infrastructure/monitoring/prometheus"
)

// Metrics records request counts and latency per route pattern.
func Metrics(m *prometheus.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
