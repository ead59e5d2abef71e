package middleware

import (
	"storefront/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records every request against its route template, so
// /api/users/getuser-by-id/:id is one series rather than one per id.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates the request instrumentation middleware.
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle must run outside the access logger so it sees the final status.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		done := m.metrics.RequestStarted()
		err := next(c)

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		done(c.Request().Method, route, c.Response().Status)

		return err
	}
}
