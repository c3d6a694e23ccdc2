// Package metrics exposes Prometheus instrumentation for the HTTP layer
// and a handler for the /metrics scrape endpoint.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// APIRequestCounter counts every request by method and route.
	APIRequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "staynest",
			Name:      "api_requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"method", "path"},
	)

	// RequestDurationHistogram tracks request latency by method, route
	// and response status.
	RequestDurationHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "staynest",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// APIErrorCounter counts responses with a 4xx or 5xx status.
	APIErrorCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "staynest",
			Name:      "api_errors_total",
			Help:      "Total number of API errors",
		},
		[]string{"method", "path", "status"},
	)

	// BookingsCreatedCounter counts successfully created bookings.
	BookingsCreatedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "staynest",
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created",
	})
)

// Middleware tracks request count, duration and error count for every
// route it wraps.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			method := c.Request().Method
			path := c.Path()

			APIRequestCounter.WithLabelValues(method, path).Inc()

			err := next(c)

			status := strconv.Itoa(c.Response().Status)
			RequestDurationHistogram.WithLabelValues(method, path, status).
				Observe(time.Since(start).Seconds())
			if c.Response().Status >= 400 {
				APIErrorCounter.WithLabelValues(method, path, status).Inc()
			}
			return err
		}
	}
}

// Handler returns the scrape endpoint handler.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
