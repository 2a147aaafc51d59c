package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bartosz-starzec/Hotel-app-backend/internal/repository"
)

// UserHandler serves the non-credential user endpoints: listing, profile
// updates and deletion. Credential flows live in AuthHandler.
type UserHandler struct {
	Users *repository.UserRepo
}

func NewUserHandler(u *repository.UserRepo) *UserHandler { return &UserHandler{Users: u} }

// profileReq carries the address fields a user may fill in after
// registration. All fields are optional; absent fields overwrite with empty
// strings, matching the full-row update semantics of the API.
type profileReq struct {
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

// List handles GET /users and returns all users ordered by ascending id.
func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := dbCtx(c)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		return storeFailed(c)
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateProfile handles PUT /users/:id/update.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badParam(c, "id")
	}
	var req profileReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	if err := h.Users.UpdateProfile(ctx, id, req.Name, req.Surname, req.Street, req.City, req.PostalCode); err != nil {
		return storeFailed(c)
	}
	return c.String(http.StatusOK, fmt.Sprintf("User modified with ID: %d", id))
}

// Delete handles DELETE /users/:id/delete. Reservations referencing the user
// are kept; there is no cascade.
func (h *UserHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badParam(c, "id")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	if err := h.Users.Delete(ctx, id); err != nil {
		return storeFailed(c)
	}
	return c.String(http.StatusOK, fmt.Sprintf("User deleted with ID: %d", id))
}
