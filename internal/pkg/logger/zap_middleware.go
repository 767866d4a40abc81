package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// ZapEchoMiddleware logs every request handled by echo
func ZapEchoMiddleware(l *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			path := req.URL.Path
			if req.URL.RawQuery != "" {
				path += "?" + req.URL.RawQuery
			}

			txn := newrelic.FromContext(req.Context())
			if txn != nil && err != nil {
				txn.NoticeError(err)
			}

			l.LogHTTPRequest(txn, req.Method, path, c.RealIP(),
				c.Response().Header().Get(echo.HeaderXRequestID),
				c.Response().Status, time.Since(start), err)
			return nil
		}
	}
}
