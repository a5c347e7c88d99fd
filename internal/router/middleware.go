package router

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/envelope-zero/personal-budget/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// URLMiddleware sets the public base URL of the API on the request context.
func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(models.ContextURL), url.String())
		c.Next()
	}
}

// requestMetrics are the Prometheus collectors for HTTP requests.
type requestMetrics struct {
	count    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var httpMetrics = requestMetrics{
	count: prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "requests_total",
			Help: "How many HTTP requests processed, partitioned by status code, HTTP method and route.",
		},
		[]string{"code", "method", "url"},
	),
	duration: prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "request_duration_seconds",
			Help: "The HTTP request latencies in seconds.",
		},
		[]string{"code", "method", "url"},
	),
}

func (m requestMetrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.count, m.duration}
}

// register resets the collectors and registers them with the default
// registry. If one of them cannot be registered, none stays registered.
func (m requestMetrics) register() error {
	for i, c := range m.collectors() {
		if err := prometheus.Register(c); err != nil {
			for _, registered := range m.collectors()[:i] {
				prometheus.Unregister(registered)
			}
			return fmt.Errorf("could not register request metrics with Prometheus: %w", err)
		}
	}

	m.count.Reset()
	m.duration.Reset()
	return nil
}

// unregister removes all collectors from the default registry so that
// another engine can register them.
func (m requestMetrics) unregister() {
	for _, c := range m.collectors() {
		prometheus.Unregister(c)
	}
}

// routeLabel returns the route template of the request, e.g.
// "/envelopes/:id". Requests without a matching route share one label to
// keep the cardinality bounded.
func routeLabel(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unmatched"
}

// MetricsMiddleware updates Prometheus metrics.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		labels := prometheus.Labels{
			"code":   strconv.Itoa(c.Writer.Status()),
			"method": c.Request.Method,
			"url":    routeLabel(c),
		}

		httpMetrics.duration.With(labels).Observe(time.Since(start).Seconds())
		httpMetrics.count.With(labels).Inc()
	}
}
