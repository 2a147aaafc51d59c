package handler // handler defines http handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bartosz-starzec/Hotel-app-backend/internal/validate"
)

// dbCtx derives a bounded context for database calls from the request.
func dbCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

// pathID parses an integer path parameter. The second return value is false
// when the parameter is not a valid integer; handlers respond with the
// field-error list via badParam in that case.
func pathID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// badParam renders the 400 field-error payload for an unparsable path param.
func badParam(c echo.Context, name string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"errors": []validate.FieldError{{Param: name, Msg: "must be an integer"}},
	})
}

// badBody renders the 400 payload for a request body that failed binding.
func badBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"errors": []validate.FieldError{{Param: "body", Msg: "invalid request body"}},
	})
}

// invalid renders the 400 payload for DTO validation failures.
func invalid(c echo.Context, errs []validate.FieldError) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"errors": errs})
}

// storeFailed renders the 500 payload for repository errors. Store failures
// are always translated into a structured response instead of propagating.
func storeFailed(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
}
