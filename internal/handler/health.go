package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Info is the unauthenticated liveness endpoint at GET /. It mirrors the
// banner the original service exposed so existing monitors keep working.
func Info(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"info": "Hotel app REST API",
	})
}
