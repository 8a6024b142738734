// Package pwaheaders adds the caching and CORS headers the PWA relies on
package pwaheaders

import (
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	AllowMethods = "GET, POST, OPTIONS"
	AllowHeaders = "Content-Type"
)

// Middleware disables caching and allows any origin on every response.
// Paths ending in .json are served as application/json.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()

			h.Set(echo.HeaderCacheControl, "no-cache, no-store, must-revalidate")
			h.Set("Pragma", "no-cache")
			h.Set("Expires", "0")

			h.Set(echo.HeaderAccessControlAllowOrigin, "*")
			h.Set(echo.HeaderAccessControlAllowMethods, AllowMethods)
			h.Set(echo.HeaderAccessControlAllowHeaders, AllowHeaders)

			if strings.HasSuffix(c.Request().URL.Path, ".json") {
				h.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			}

			return next(c)
		}
	}
}
