package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIKeyAuth returns an Echo middleware that gates a route group behind the
// shared-secret API key. The client sends the secret in the `apiKey` header
// and it must match the server-held value byte for byte. There is no per-key
// identity: the key is a single shared secret, not a principal.
//
// A missing or mismatched key short-circuits the request with 401 and the
// fixed payload {"status":"error","message":"Unauthorized."} before any
// store access happens.
func APIKeyAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Header.Get("apiKey")
			if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"status":  "error",
					"message": "Unauthorized.",
				})
			}
			return next(c)
		}
	}
}
