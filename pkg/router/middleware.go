package router

import (
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/alocar/backend/pkg/httputil"
	"github.com/alocar/backend/pkg/store"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// URLMiddleware stores the public base URL of the API in the request context
// so that handlers can build links.
func URLMiddleware(url *url.URL) gin.HandlerFunc {
	base := url.String()

	return func(c *gin.Context) {
		c.Set(httputil.ContextURL, base)
		c.Next()
	}
}

var (
	requestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "requests_total",
			Help: "How many HTTP requests were processed, partitioned by status code, method and route.",
		},
		[]string{"code", "method", "route"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "request_duration_seconds",
			Help:    "The HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"code", "method", "route"},
	)
)

func collectors() []prometheus.Collector {
	return []prometheus.Collector{requestCount, requestDuration, store.WriteCount}
}

// registerPrometheusMetrics registers the HTTP and store metrics with the
// default registry. Nothing stays registered if one of them fails.
func registerPrometheusMetrics() error {
	var registered []prometheus.Collector

	for _, c := range collectors() {
		if err := prometheus.Register(c); err != nil {
			for _, r := range registered {
				prometheus.Unregister(r)
			}

			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				return errors.New("could not register metrics with Prometheus: already registered")
			}
			return err
		}
		registered = append(registered, c)
	}

	return nil
}

func unregisterPrometheusMetrics() {
	for _, c := range collectors() {
		prometheus.Unregister(c)
	}
}

// MetricsMiddleware records the count and latency of every request.
//
// Requests are labeled with the route pattern instead of the path so that
// resource IDs do not end up in label values.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		labels := []string{strconv.Itoa(c.Writer.Status()), c.Request.Method, route}
		requestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		requestCount.WithLabelValues(labels...).Inc()
	}
}
