// Package middleware provides Echo middleware for the discogs-alert HTTP
// server.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/discogs-alert/internal/metrics"
)

// healthGauges maps health check paths to their up/down gauge. Health check and scrape
// paths are kept out of the request histograms.
var healthGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

const metricsPath = "/metrics"

// Metrics returns Echo middleware that records request duration and status
// by route. Health checks only flip their gauge; /metrics is not recorded
// at all.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := routePath(c)

			if path == metricsPath {
				return next(c)
			}
			if gauge, ok := healthGauges[path]; ok {
				err := next(c)
				gauge.Set(boolToFloat(isSuccess(c.Response().Status)))
				return err
			}

			start := time.Now()
			err := next(c)

			status := strconv.Itoa(c.Response().Status)
			method := c.Request().Method

			metrics.HTTPRequestDuration.
				WithLabelValues(method, path, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, path, status).
				Inc()

			return err
		}
	}
}

// routePath prefers the registered route pattern so path parameters do not
// explode label cardinality.
func routePath(c echo.Context) string {
	if p := c.Path(); p != "" {
		return p
	}
	return c.Request().URL.Path
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
