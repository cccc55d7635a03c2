package http

import (
	"strconv"
	"time"

	"marketplace/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latencies per route.
// The route template is used as the path label, not the raw URL, so
// identifiers do not blow up the label cardinality.
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()

			err := next(ctx)

			path := ctx.Path()
			method := ctx.Request().Method
			status := ctx.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				}
			}

			metrics.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
