package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	httpclient "github.com/piresc/arcpay/internal/pkg/http"
	"github.com/piresc/arcpay/internal/utils"
)

// APIKey rejects requests whose X-API-Key is not one of keys.
// An empty key list disables the check.
func APIKey(keys []string) echo.MiddlewareFunc {
	allowed := make([][]byte, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			allowed = append(allowed, []byte(k))
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if len(allowed) == 0 {
			return next
		}
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(httpclient.APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			for _, k := range allowed {
				if subtle.ConstantTimeCompare([]byte(apiKey), k) == 1 {
					return next(c)
				}
			}
			return utils.UnauthorizedResponse(c, "Invalid API key")
		}
	}
}
