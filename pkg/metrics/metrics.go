package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the API.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	leadsInSet      prometheus.Gauge
	refreshesTotal  *prometheus.CounterVec
}

// New registers the collectors on the default registry.
func New() *Metrics {
	return &Metrics{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "realtycrm_http_requests_total",
			Help: "Total HTTP requests by method, path and status code.",
		}, []string{"method", "path", "status"}),
		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "realtycrm_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		leadsInSet: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "realtycrm_working_set_leads",
			Help: "Number of leads currently in the working set.",
		}),
		refreshesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "realtycrm_refreshes_total",
			Help: "Working set refreshes by outcome (store or snapshot).",
		}, []string{"source"}),
	}
}

// Middleware records request counts and latency per route.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			m.requestsTotal.WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).Inc()
			m.requestDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// SetWorkingSetSize records the current lead count.
func (m *Metrics) SetWorkingSetSize(n int) {
	m.leadsInSet.Set(float64(n))
}

// ObserveRefresh counts one refresh attempt by its outcome.
func (m *Metrics) ObserveRefresh(source string) {
	m.refreshesTotal.WithLabelValues(source).Inc()
}
