package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/arcpay/internal/pkg/context"
)

const contextKeyRequestID = "request_id"

// RequestIDMiddleware propagates X-Request-ID or generates one.
// The id is also stored on the request context for the *Ctx log helpers.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.Set(contextKeyRequestID, requestID)
			req := c.Request()
			c.SetRequest(req.WithContext(appctx.WithRequestID(req.Context(), requestID)))

			return next(c)
		}
	}
}

// GetRequestID returns the id set by RequestIDMiddleware
func GetRequestID(c echo.Context) string {
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	if id, ok := c.Get(contextKeyRequestID).(string); ok {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}
