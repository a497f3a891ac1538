// Package middleware holds the Echo middleware of the reference server.
package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RequestLogger writes one structured line per request. Bodies are never logged.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// Render now so the logged status is the one the client sees.
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			evt := log.Info()
			if res.Status >= 500 {
				evt = log.Error()
			} else if res.Status >= 400 {
				evt = log.Warn()
			}
			evt.
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Str("method", req.Method).
				Str("route", c.Path()).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Msg("request")
			return nil
		}
	}
}
