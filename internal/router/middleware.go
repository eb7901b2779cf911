package router

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// URLMiddleware sets the base URL of the API in the context. It is used to build links.
func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(models.DBContextURL), strings.TrimSuffix(url.String(), "/"))
		c.Next()
	}
}

var (
	requestCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledger",
		Name:      "requests_total",
		Help:      "HTTP requests by status code, method and route.",
	}, []string{"code", "method", "url"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ledger",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latencies in seconds by status code, method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"code", "method", "url"})
)

// collectors are the metrics the router owns.
func collectors() []prometheus.Collector {
	return []prometheus.Collector{requestCount, requestDuration}
}

// registerMetrics registers the router metrics with the default registry.
// If one of them fails, the ones registered before it are removed again.
func registerMetrics() error {
	var done []prometheus.Collector
	for _, c := range collectors() {
		if err := prometheus.Register(c); err != nil {
			for _, d := range done {
				prometheus.Unregister(d)
			}
			return fmt.Errorf("could not register metrics: %w", err)
		}
		done = append(done, c)
	}

	return nil
}

// unregisterMetrics removes the router metrics. It reports false if any was not registered.
func unregisterMetrics() bool {
	ok := true
	for _, c := range collectors() {
		ok = prometheus.Unregister(c) && ok
	}
	return ok
}

// MetricsMiddleware updates Prometheus metrics.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// The route pattern keeps departments and ids out of the label values
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		labels := prometheus.Labels{
			"code":   strconv.Itoa(c.Writer.Status()),
			"method": c.Request.Method,
			"url":    route,
		}
		requestDuration.With(labels).Observe(time.Since(start).Seconds())
		requestCount.With(labels).Inc()
	}
}
