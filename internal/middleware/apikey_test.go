package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatedEcho(secret string, called *bool) *echo.Echo {
	e := echo.New()
	g := e.Group("", APIKeyAuth(secret))
	g.GET("/rooms", func(c echo.Context) error {
		*called = true
		return c.JSON(http.StatusOK, []string{})
	})
	return e
}

func TestAPIKeyAuth_MissingHeader(t *testing.T) {
	called := false
	e := gatedEcho("s3cret", &called)

	req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"Unauthorized."}`, rec.Body.String())
	assert.False(t, called, "handler must not run without the API key")
}

func TestAPIKeyAuth_WrongKey(t *testing.T) {
	called := false
	e := gatedEcho("s3cret", &called)

	req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
	req.Header.Set("apiKey", "nope")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"Unauthorized."}`, rec.Body.String())
	assert.False(t, called)
}

func TestAPIKeyAuth_CorrectKey(t *testing.T) {
	called := false
	e := gatedEcho("s3cret", &called)

	req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
	req.Header.Set("apiKey", "s3cret")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}
